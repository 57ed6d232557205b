// Package repository define los tipos de dominio y los contratos de almacenamiento.
//
// Los contratos son independientes del backend. Las implementaciones viven en
// internal/store/adapters/:
//
//	┌─────────────────────────────────────────────┐
//	│        services (clients, logs, health)      │
//	└─────────────────────────────────────────────┘
//	                     │
//	                     ▼
//	┌─────────────────────────────────────────────┐
//	│   repository (ClientRepository, LogRepo)     │
//	└─────────────────────────────────────────────┘
//	          │               │              │
//	          ▼               ▼              ▼
//	   adapters/pg     adapters/sqlite  adapters/memory
//
// Convenciones:
//   - Context siempre es el primer parámetro.
//   - Los errores de dominio están en errors.go y se comparan con errors.Is.
package repository

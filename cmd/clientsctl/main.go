package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/gesclient/internal/apiclient"
	"github.com/dropDatabas3/gesclient/internal/util/atomicwrite"
)

type cli struct {
	api    *apiclient.Client
	out    string // "json" | "text"
	export string // archivo JSON de export (opcional)
}

func (c *cli) print(v any, text func(w *tabwriter.Writer)) error {
	if c.export != "" {
		if err := atomicwrite.WriteJSON(c.export, v); err != nil {
			return fmt.Errorf("export %s: %w", c.export, err)
		}
	}
	if c.out == "json" {
		p, _ := json.MarshalIndent(v, "", "  ")
		fmt.Println(string(p))
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	text(w)
	return w.Flush()
}

func printClients(w *tabwriter.Writer, list ...apiclient.ClientData) {
	fmt.Fprintln(w, "NUMERO\tSTATUT\tNOM\tEMAIL")
	for _, c := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Numero, c.Statut, c.Nom, c.Email)
	}
}

func main() {
	var (
		baseURL = envOr("GESCLIENT_API_URL", "http://localhost:3000")
		out     = envOr("GESCLIENT_OUT", "text")
		export  string
		timeout = 30 * time.Second
	)

	c := &cli{}
	root := &cobra.Command{
		Use:          "clientsctl",
		Short:        "CLI para la API de gestión de clients",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if out != "json" && out != "text" {
				return fmt.Errorf("--out debe ser json|text")
			}
			c.api = apiclient.New(baseURL)
			c.api.HTTP.Timeout = timeout
			c.out = out
			c.export = export
			return nil
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "api-url", baseURL, "URL base de la API (env GESCLIENT_API_URL)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")
	root.PersistentFlags().StringVar(&export, "export", "", "Guardar además el resultado como JSON en este archivo")
	root.PersistentFlags().DurationVar(&timeout, "timeout", timeout, "Timeout de cada request")

	clientsCmd := &cobra.Command{Use: "clients", Short: "Operaciones sobre clients"}

	var listStatut string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.api.ListClients(cmd.Context(), listStatut)
			if err != nil {
				return err
			}
			return c.print(list, func(w *tabwriter.Writer) { printClients(w, list...) })
		},
	}
	listCmd.Flags().StringVar(&listStatut, "statut", "", "Filtrar por statut (actif|inactif)")

	getCmd := &cobra.Command{
		Use:   "get <numero>",
		Short: "Consultar un client activo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.api.GetClient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(cl, func(w *tabwriter.Writer) { printClients(w, *cl) })
		},
	}

	var in apiclient.CreateInput
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un client",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Numero == "" || in.Statut == "" || in.Nom == "" {
				return fmt.Errorf("--numero, --statut y --nom son requeridos")
			}
			cl, err := c.api.CreateClient(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(cl, func(w *tabwriter.Writer) { printClients(w, *cl) })
		},
	}
	createCmd.Flags().StringVar(&in.Numero, "numero", "", "Numero del client")
	createCmd.Flags().StringVar(&in.Statut, "statut", "actif", "Statut: actif|inactif")
	createCmd.Flags().StringVar(&in.Nom, "nom", "", "Nombre")
	createCmd.Flags().StringVar(&in.Email, "email", "", "Email (opcional)")

	var updStatut, updNom, updEmail string
	updateCmd := &cobra.Command{
		Use:   "update <numero>",
		Short: "Modificar un client (solo los flags indicados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch apiclient.UpdateInput
			if cmd.Flags().Changed("statut") {
				patch.Statut = &updStatut
			}
			if cmd.Flags().Changed("nom") {
				patch.Nom = &updNom
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &updEmail
			}
			cl, err := c.api.UpdateClient(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return c.print(cl, func(w *tabwriter.Writer) { printClients(w, *cl) })
		},
	}
	updateCmd.Flags().StringVar(&updStatut, "statut", "", "Nuevo statut")
	updateCmd.Flags().StringVar(&updNom, "nom", "", "Nuevo nombre")
	updateCmd.Flags().StringVar(&updEmail, "email", "", "Nuevo email")

	deleteCmd := &cobra.Command{
		Use:   "delete <numero>",
		Short: "Eliminar un client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.api.DeleteClient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(cl, func(w *tabwriter.Writer) { printClients(w, *cl) })
		},
	}

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Listar los logs de auditoría",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := c.api.Logs(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(logs, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "DATE\tNUMERO\tSTATUT\tMESSAGE")
				for _, l := range logs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Date.Format(time.RFC3339), l.Numero, l.Statut, l.Message)
				}
			})
		},
	}

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Consultar /readyz",
		RunE: func(cmd *cobra.Command, args []string) error {
			ready, err := c.api.Ready(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(ready, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "status\t%s\nmode\t%s\n", ready.Status, ready.Mode)
				for name, comp := range ready.Components {
					fmt.Fprintf(w, "%s\t%s\t%s\n", name, comp.Status, comp.Message)
				}
			})
		},
	}

	clientsCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	root.AddCommand(clientsCmd, logsCmd, pingCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

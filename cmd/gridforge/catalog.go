package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samdwyer/gridforge/internal/catalog"
)

var flagCatalogLimit int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local map catalog",
	Long: `Catalog lists, shows and deletes maps stored with generate --save.
Maps are kept in a local SQLite database in their compact wire form.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored maps, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored map's compact string",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored map",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogDelete,
}

func init() {
	catalogListCmd.Flags().IntVar(&flagCatalogLimit, "limit", 20, "Maximum number of maps to list")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(flagCatalogLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No maps stored. Generate one with: gridforge generate --save")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tSEED\tTHEME\tALGORITHM\tRATIO\tCREATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\t%s\t%.1f%%\t%s\n",
			e.ID, e.Width, e.Height, e.Seed, e.Theme, e.Algorithm,
			e.CompressionRatio*100, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), entry.Compact)
	return nil
}

func runCatalogDelete(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
	return nil
}

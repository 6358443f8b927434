package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"wardrobe/feature/clothing/models"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build the clothing catalog and print a summary",
	Long: `Builds the catalog once (live feeds, or the built-in fallback when they are
unreachable) and prints the item counts. With --category the items of one category
are listed; --json prints the full result instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")
		tierFlag, _ := cmd.Flags().GetString("tier")
		genderFlag, _ := cmd.Flags().GetString("gender")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		filter := models.Filter{}
		if categoryFlag != "" {
			category, ok := models.ParseCategory(categoryFlag)
			if !ok {
				return fmt.Errorf("unknown category %q", categoryFlag)
			}
			filter.Category = category
		}
		if tierFlag != "" {
			tier, ok := models.ParseTier(tierFlag)
			if !ok {
				return fmt.Errorf("unknown tier %q", tierFlag)
			}
			filter.Tier = tier
		}
		if genderFlag != "" {
			gender, ok := models.LookupGender(genderFlag)
			if !ok {
				return fmt.Errorf("unknown gender %q", genderFlag)
			}
			filter.Gender = gender
		}

		d, err := bootstrap()
		if err != nil {
			return err
		}
		svc, err := d.catalogService()
		if err != nil {
			return err
		}

		cat := svc.Catalog(cmd.Context())
		listing := filter != models.Filter{}

		if jsonOutput {
			var out any = cat.Summary()
			if listing {
				out = cat.Filter(filter)
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if listing {
			printItems(cat.Filter(filter))
			return nil
		}
		printSummary(cat.Summary())
		return nil
	},
}

func printSummary(s models.Summary) {
	fmt.Println("\n=== Clothing Catalog ===")
	fmt.Printf("Source: %s\n", s.Source)
	fmt.Printf("Built At: %s\n", s.BuiltAt.Format("2006-01-02 15:04:05"))
	if s.Diagnostic != "" {
		fmt.Printf("Diagnostic: %s\n", s.Diagnostic)
	}
	fmt.Printf("Total Items: %d\n", s.Total)

	categories := make([]models.Category, 0, len(s.Categories))
	for c := range s.Categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Order() < categories[j].Order() })

	fmt.Println("\nCategories:")
	for _, c := range categories {
		fmt.Printf("  %-3s %d\n", c, s.Categories[c])
	}

	tiers := make([]string, 0, len(s.Tiers))
	for t := range s.Tiers {
		tiers = append(tiers, string(t))
	}
	sort.Strings(tiers)

	fmt.Println("\nTiers:")
	for _, t := range tiers {
		fmt.Printf("  %-12s %d\n", t, s.Tiers[models.Tier(t)])
	}
}

func printItems(items []models.CatalogItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSET\tGENDER\tTIER\tCOLORS\tDUOTONE\tCLASSNAME")
	for _, item := range items {
		classname := "-"
		if meta, ok := models.MetadataOf(item.Metadata); ok {
			classname = meta.Classname
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%s\n",
			item.Key(), item.SetID, item.Gender, item.Tier,
			strings.Join(item.ColorIDs(), ","), item.Duotone, classname)
	}
	_ = w.Flush()
	fmt.Printf("\n%d items\n", len(items))
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().String("category", "", "List the items of one category (hd, hr, ch, ...)")
	catalogCmd.Flags().String("tier", "", "List the items of one tier (normal, club, sellable, rare, limited, collectible)")
	catalogCmd.Flags().String("gender", "", "List the items wearable by a gender (M, F)")
	catalogCmd.Flags().Bool("json", false, "Output JSON")
}

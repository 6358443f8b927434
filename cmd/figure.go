package cmd

import (
	"errors"
	"fmt"

	"wardrobe/feature/clothing"
	"wardrobe/feature/clothing/imaging"
	"wardrobe/feature/clothing/models"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// figureCmd represents the figure command
var figureCmd = &cobra.Command{
	Use:   "figure <category> <figureId>",
	Short: "Print the imaging URLs of a clothing item",
	Long: `Looks up one item in the catalog, resolves the requested colors against its
palette and prints the avatar and isolated thumbnail URLs.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, ok := models.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q", args[0])
		}
		key := models.Key{Category: category, FigureID: args[1]}

		color, _ := cmd.Flags().GetString("color")
		color2, _ := cmd.Flags().GetString("color2")
		gender, _ := cmd.Flags().GetString("gender")
		size, _ := cmd.Flags().GetString("size")
		direction, _ := cmd.Flags().GetString("direction")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		d, err := bootstrap()
		if err != nil {
			return err
		}
		svc, err := d.catalogService()
		if err != nil {
			return err
		}

		preview, err := svc.Preview(cmd.Context(), key, clothing.PreviewRequest{
			Color:  color,
			Color2: color2,
			Gender: models.ParseGender(gender),
			Pose:   imaging.Pose{Size: size, Direction: direction},
		})
		if errors.Is(err, clothing.ErrItemNotFound) {
			return fmt.Errorf("no item %s in the %s catalog", key, svc.Catalog(cmd.Context()).Source)
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			data, err := json.MarshalIndent(preview, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		item := preview.Item
		fmt.Printf("\n=== %s ===\n", item.Key())
		fmt.Printf("Set: %s\n", item.SetID)
		fmt.Printf("Gender: %s\n", item.Gender)
		fmt.Printf("Tier: %s\n", item.Tier)
		fmt.Printf("Source: %s\n", preview.Source)
		fmt.Printf("Colors: %v\n", preview.Colors.Colors())
		if preview.Warning != "" {
			fmt.Printf("Warning: %s\n", preview.Warning)
		}
		fmt.Printf("\nAvatar: %s\n", preview.AvatarURL)
		fmt.Printf("Thumbnail: %s\n", preview.ThumbnailURL)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(figureCmd)
	figureCmd.Flags().String("color", "", "Primary color id")
	figureCmd.Flags().String("color2", "", "Secondary color id for duotone items")
	figureCmd.Flags().String("gender", "", "Mannequin gender (M, F)")
	figureCmd.Flags().String("size", "", "Image size (s, m, l)")
	figureCmd.Flags().String("direction", "", "Body direction (0-7)")
	figureCmd.Flags().Bool("json", false, "Output JSON")
}

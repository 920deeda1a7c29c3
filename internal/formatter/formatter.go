// package formatter provides functions to export trip data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/shared"
)

// ExportToCSV converts a TripExport to CSV format with one row per itinerary
// block, columns: Day, Block, Title, Location, Ticketed, DayTrip
func ExportToCSV(export *models.TripExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Day", "Block", "Title", "Location", "Ticketed", "DayTrip"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	if export.Itinerary != nil {
		for _, day := range export.Itinerary.Days {
			for _, blockName := range models.BlockOrder {
				block, ok := day.Blocks[blockName]
				if !ok {
					continue
				}
				record := []string{
					strconv.Itoa(day.DayIndex),
					string(blockName),
					block.Title,
					block.Location,
					shared.YesNo(block.Ticketed),
					shared.YesNo(block.DayTrip),
				}
				if err := writer.Write(record); err != nil {
					return nil, fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a TripExport to Markdown format with per-day
// sections and an optional reflections appendix
func ExportToMarkdown(export *models.TripExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Trip.Name))
	buf.WriteString(fmt.Sprintf("**Destination**: %s\n", export.Trip.Destination))
	if export.Trip.StartDate != "" {
		buf.WriteString(fmt.Sprintf("**Dates**: %s to %s\n", export.Trip.StartDate, export.Trip.EndDate))
	}
	if export.Trip.PartySize > 0 {
		buf.WriteString(fmt.Sprintf("**Party**: %d\n", export.Trip.PartySize))
	}
	buf.WriteString(fmt.Sprintf("**Days**: %d\n\n", export.TotalDays()))

	if export.Itinerary != nil {
		for _, day := range export.Itinerary.Days {
			buf.WriteString(fmt.Sprintf("## Day %d\n\n", day.DayIndex))
			if day.Summary != "" {
				buf.WriteString(fmt.Sprintf("%s\n\n", day.Summary))
			}
			for _, blockName := range models.BlockOrder {
				block, ok := day.Blocks[blockName]
				if !ok {
					continue
				}
				buf.WriteString(fmt.Sprintf("- **%s**: %s", shared.TitleCase(string(blockName)), block.Title))
				if block.Location != "" {
					buf.WriteString(fmt.Sprintf(" (%s)", block.Location))
				}
				if block.Ticketed {
					buf.WriteString(" [ticketed]")
				}
				buf.WriteString("\n")
			}
			buf.WriteString("\n")
		}
	}

	if len(export.Reflections) > 0 {
		buf.WriteString("## Reflections\n\n")
		for _, reflection := range export.Reflections {
			buf.WriteString(fmt.Sprintf("### Day %d\n\n", reflection.DayIndex()))
			buf.WriteString(fmt.Sprintf("**Moods**: %s\n\n", strings.Join(reflection.Moods(), ", ")))
			if reflection.Journal() != "" {
				buf.WriteString(fmt.Sprintf("%s\n\n", reflection.Journal()))
			}
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a TripExport to plain text format
func ExportToText(export *models.TripExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Trip: %s\n", export.Trip.Name))
	buf.WriteString(fmt.Sprintf("Destination: %s\n", export.Trip.Destination))
	buf.WriteString(fmt.Sprintf("Days: %d\n\n", export.TotalDays()))

	if export.Itinerary != nil {
		for _, day := range export.Itinerary.Days {
			buf.WriteString(fmt.Sprintf("Day %d\n", day.DayIndex))
			for _, blockName := range models.BlockOrder {
				if block, ok := day.Blocks[blockName]; ok {
					buf.WriteString(fmt.Sprintf("  %s: %s\n", blockName, block.Title))
				}
			}
		}
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of trip metadata (without the itinerary)
func ToMetadataJSON(trip models.Trip) ([]byte, error) {
	data, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trip metadata: %w", err)
	}
	return data, nil
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	ItineraryFile string
	MetadataFile  string
}

// WriteCSVExport exports a trip to CSV format with accompanying metadata JSON file.
//
// Defaults to the trip ID as the base filename & creates {base}_itinerary.csv and {base}_metadata.json
func WriteCSVExport(export *models.TripExport, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = export.Trip.ID
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	itineraryFile := baseFilepath + "_itinerary.csv"
	if err := os.WriteFile(itineraryFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(export.Trip)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		ItineraryFile: itineraryFile,
		MetadataFile:  metadataFile,
	}, nil
}

// WriteMarkdownExport exports a trip to Markdown format in a dedicated directory.
//
// Directory name defaults to the trip ID. Creates {dir}/README.md
func WriteMarkdownExport(export *models.TripExport, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = export.Trip.ID
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return mdFile, nil
}

// WriteTextExport exports a trip to plain text format.
//
// Defaults to {trip.ID}_itinerary.txt as the filename.
func WriteTextExport(export *models.TripExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_itinerary.txt", export.Trip.ID)
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

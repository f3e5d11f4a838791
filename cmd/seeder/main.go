package main

import (
	"encoding/csv"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gharkhoj/gharkhoj/dataset"
)

// Sample listing exports, small enough to read by eye but wide enough
// to exercise the whole pipeline: projects without addresses,
// configurations without variants, variants without prices, custom
// bedroom labels and every furnishing value.

var projects = [][]string{
	{"id", "projectName", "slug", "status", "furnishedType", "lift"},
	{"1", "Green Acres", "green-acres", "Ready To Move", "FURNISHED", "TRUE"},
	{"2", "Blue Heights", "blue-heights", "Under Construction", "SEMI-FURNISHED", "FALSE"},
	{"3", "Lakeside Towers", "lakeside-towers", "Ready To Move", "UNFURNISHED", "TRUE"},
	{"4", "Lake Villa Estate", "lake-villa-estate", "Completed", "", "FALSE"},
	{"5", "Metro Residency", "metro-residency", "Ongoing", "FURNISHED", "TRUE"},
	{"6", "Palm Meadows", "palm-meadows", "Ready To Move", "SEMI-FURNISHED", "TRUE"},
	{"7", "Sunrise Enclave", "sunrise-enclave", "Upcoming", "", "FALSE"},
	{"8", "Marina Bay Homes", "marina-bay-homes", "Ready To Move", "FURNISHED", "TRUE"},
	{"9", "Whitefield Gardens", "whitefield-gardens", "Under Construction", "UNFURNISHED", "FALSE"},
	{"10", "Salt Lake Residency", "salt-lake-residency", "Ready To Move", "SEMI-FURNISHED", "TRUE"},
	{"11", "Gachibowli Heights", "gachibowli-heights", "Ongoing", "FURNISHED", "TRUE"},
	{"12", "Tambaram Greens", "tambaram-greens", "Ready To Move", "", "FALSE"},
}

// Project 7 has no address row on purpose; its listing keeps null
// address columns through the left join.
var addresses = [][]string{
	{"id", "projectId", "fullAddress", "landmark", "city"},
	{"1", "1", "Survey 45, Baner Road, Pune", "Near Baner Hill", ""},
	{"2", "2", "Plot 12, Andheri West, Mumbai", "Metro Station", "Mumbai"},
	{"3", "3", "Ghodbunder Road, Thane", "", "Thane"},
	{"4", "4", "Phase 2, Hinjewadi, Pune", "Opposite Rajiv Gandhi Infotech Park", ""},
	{"5", "5", "Sector 9, Chembur, Mumbai", "Near Diamond Garden", "Mumbai"},
	{"6", "6", "Wakad, Pune", "Close to Mumbai-Bangalore Highway", ""},
	{"8", "8", "Besant Nagar, Chennai", "Near Elliots Beach", "Chennai"},
	{"9", "9", "ITPL Main Road, Whitefield, Bangalore", "", ""},
	{"10", "10", "Sector V, Salt Lake, Kolkata", "Near City Centre", "Kolkata"},
	{"11", "11", "Financial District, Gachibowli, Hyderabad", "", ""},
	{"12", "12", "GST Road, Tambaram, Chennai", "Near Railway Station", ""},
}

// Configuration 114 has no variant row; its listing keeps a null price
// and drops out of every search.
var configurations = [][]string{
	{"id", "projectId", "type", "customBHK", "bathrooms", "balcony"},
	{"101", "1", "3", "", "2", "2"},
	{"102", "1", "2", "", "2", "1"},
	{"103", "2", "2", "", "2", "1"},
	{"104", "3", "2", "", "2", "0"},
	{"105", "4", "4", "4 BHK Duplex", "4", "3"},
	{"106", "5", "2", "", "1", "1"},
	{"107", "6", "3", "", "3", "2"},
	{"108", "7", "1", "", "1", "0"},
	{"109", "8", "3", "", "3", "2"},
	{"110", "9", "2", "", "2", "1"},
	{"111", "10", "2", "", "2", "1"},
	{"112", "11", "3", "", "3", "2"},
	{"113", "12", "2", "", "2", "0"},
	{"114", "2", "3", "", "2", "1"},
}

var variants = [][]string{
	{"id", "configurationId", "price", "carpetArea"},
	{"1001", "101", "9500000", "1250"},
	{"1002", "101", "9900000", "1300"},
	{"1003", "102", "7800000", "980"},
	{"1004", "103", "7200000", "650"},
	{"1005", "104", "6800000", "700"},
	{"1006", "105", "21000000", "2800"},
	{"1007", "106", "5900000", "610"},
	{"1008", "107", "11500000", "1400"},
	{"1009", "108", "3200000", "420"},
	{"1010", "109", "13500000", "1550"},
	{"1011", "110", "8400000", "1050"},
	{"1012", "111", "7600000", "940"},
	{"1013", "112", "9800000", "1280"},
	{"1014", "113", "", "800"},
}

var outDir = flag.String("out", "data", "directory to write the sample listing files")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// writeFile writes one source file in the export format the loader
// expects.
func writeFile(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	return w.WriteAll(records)
}

func main() {
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	files := []struct {
		name    string
		records [][]string
	}{
		{dataset.ProjectFile, projects},
		{dataset.AddressFile, addresses},
		{dataset.ConfigurationFile, configurations},
		{dataset.VariantFile, variants},
	}
	for _, file := range files {
		path := filepath.Join(*outDir, file.name)
		if err := writeFile(path, file.records); err != nil {
			panic(err)
		}
		slog.Info("wrote source file", "path", path, "rows", len(file.records)-1)
	}

	// Load the freshly written files back to prove they denormalize.
	loader, err := dataset.NewLoader(dataset.NewConfig(dataset.WithDataDir(*outDir)))
	if err != nil {
		panic(err)
	}
	table, err := loader.Load()
	if err != nil {
		panic(err)
	}
	slog.Info("sample dataset ready", "listings", table.Len())
}

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gookit/color"
	m3u8 "github.com/playlistkit/go-m3u8"
	"github.com/playlistkit/go-m3u8/fetch"
	"github.com/spf13/cobra"
)

var (
	sortBy  string
	headers []string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "m3u8 <url-or-file>",
	Short:        "Parse an HLS master playlist and print its streams",
	Args:         cobra.ExactArgs(1),
	RunE:         runE,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&sortBy, "sort-by", "", "attribute key to sort the printed groups by")
	rootCmd.Flags().StringArrayVar(&headers, "header", nil, "extra request header in KEY=VALUE form (repeatable)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", fetch.DefaultTimeout, "HTTP request timeout")
}

func runE(cmd *cobra.Command, args []string) error {
	target := args[0]

	var playlist *m3u8.Playlist
	var err error
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		client := fetch.NewClient(timeout)
		for _, header := range headers {
			key, value, found := strings.Cut(header, "=")
			if !found {
				return fmt.Errorf("malformed header %q, want KEY=VALUE", header)
			}
			client.SetHeader(key, value)
		}
		playlist, err = m3u8.FromURI(target, client)
	} else {
		var data []byte
		if data, err = os.ReadFile(target); err != nil {
			return err
		}
		playlist, err = m3u8.Parse(string(data))
	}
	if err != nil {
		return err
	}

	fmt.Printf("version: %s\n", playlist.Version)
	fmt.Printf("independent segments: %v\n", playlist.IndependentSegments)
	printGroup("variant streams", playlist.VariantStreams, playlist.VariantStreamsBy)
	printGroup("media tags", playlist.MediaTags, playlist.MediaTagsBy)
	printGroup("media resources", playlist.MediaResources, playlist.MediaResourcesBy)
	return nil
}

// printGroup prints one record group, in insertion order unless --sort-by
// was given.
func printGroup(name string, records []m3u8.Attributes, sorted func(string) []m3u8.Attributes) {
	if sortBy != "" {
		records = sorted(sortBy)
	}

	color.Bold.Printf("%s (%d)\n", name, len(records))
	for i, record := range records {
		keys := make([]string, 0, len(record))
		for key := range record {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Printf("  %d.", i+1)
		for _, key := range keys {
			fmt.Printf(" %s=%s", color.Cyan.Sprint(key), record[key])
		}
		fmt.Println()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

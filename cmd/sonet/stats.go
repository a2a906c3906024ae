package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"sonet/internal/driver"
	"sonet/internal/graph"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags]",
	Short: "Report follow-graph statistics for XML documents",
	Long:  `Stats projects each document into its record tree, builds the directed follow graph, and reports degree metrics. The input may be a single file or a directory of *.xml files`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringP("input", "i", "", "path to an XML file or a directory")
	_ = statsCmd.MarkFlagRequired("input")
	statsCmd.Flags().Int("top", 5, "number of entries in top rankings")
	statsCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	statsCmd.Flags().Bool("cache", false, "cache computed metrics on disk keyed by content hash")
	statsCmd.Flags().String("mutual", "", "two user ids separated by a comma: list users following both")
	statsCmd.Flags().String("suggest", "", "user id: recommend accounts to follow")
}

func runStats(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	inPath, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("failed to get input flag: %w", err)
	}
	topN, err := cmd.Flags().GetInt("top")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}

	mutual, err := cmd.Flags().GetString("mutual")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetString("suggest")
	if err != nil {
		return err
	}

	info, err := os.Stat(inPath)
	if err != nil {
		return describeErr(fmt.Errorf("stat %s: %w", inPath, err))
	}

	if mutual != "" || suggest != "" {
		if info.IsDir() {
			return fmt.Errorf("--mutual and --suggest work on a single file, not a directory")
		}
		return runGraphQueries(inPath, mutual, suggest, topN)
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("sonet")
		if err != nil {
			return fmt.Errorf("open disk cache: %w", err)
		}
	}

	var results []driver.StatsResult
	if info.IsDir() {
		results, err = driver.StatsDir(cmd.Context(), inPath, topN, jobs)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("no *.xml files found")
			return nil
		}
	} else {
		res, err := statsFile(inPath, topN, cache)
		if err != nil {
			return err
		}
		results = []driver.StatsResult{res}
	}

	for i := range results {
		renderStats(cmd, results[i])
	}
	return nil
}

// runGraphQueries answers the point queries over one document's follow
// graph: mutual followers of a pair and follow suggestions for a user.
func runGraphQueries(path, mutual, suggest string, topN int) error {
	g, err := driver.LoadGraph(path)
	if err != nil {
		return describeErr(err)
	}

	if mutual != "" {
		a, b, ok := strings.Cut(mutual, ",")
		if !ok {
			return fmt.Errorf("--mutual expects two user ids separated by a comma, got %q", mutual)
		}
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		fmt.Printf("mutual followers of %s and %s:\n", a, b)
		printIDList(g, g.MutualFollowers(a, b))
	}

	if suggest != "" {
		id := strings.TrimSpace(suggest)
		fmt.Printf("follow suggestions for %s:\n", id)
		printIDList(g, g.SuggestFollows(id, topN))
	}
	return nil
}

func printIDList(g *graph.Graph, ids []string) {
	if len(ids) == 0 {
		fmt.Println("  none")
		return
	}
	for _, id := range ids {
		fmt.Printf("  %s\n", displayName(graph.UserStat{ID: id, Name: g.Name(id)}))
	}
}

// statsFile computes metrics for one file, going through the disk cache
// when enabled.
func statsFile(path string, topN int, cache *driver.DiskCache) (driver.StatsResult, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return driver.StatsResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	key := driver.HashContent(content)

	var payload driver.StatsPayload
	if ok, err := cache.Get(key, &payload); err == nil && ok && payload.TopN == topN {
		return driver.StatsResult{Path: path, Metrics: payload.Metrics}, nil
	}

	res := driver.StatsOne(path, topN)
	if res.Err != nil {
		return driver.StatsResult{}, res.Err
	}

	if err := cache.Put(key, &driver.StatsPayload{
		Schema:      driver.Schema(),
		Path:        path,
		ContentHash: key,
		TopN:        topN,
		Metrics:     res.Metrics,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "stats: cache write failed: %v\n", err)
	}
	return res, nil
}

func renderStats(cmd *cobra.Command, res driver.StatsResult) {
	header := color.New(color.Bold, color.FgCyan)
	if !useColor(cmd, os.Stdout) {
		header.DisableColor()
	}

	header.Printf("%s\n", res.Path)
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "stats: %s: %v\n", res.Path, res.Err)
		return
	}

	m := res.Metrics
	fmt.Printf("  users: %d  relations: %d  density: %.4f  avg in/out degree: %.2f\n",
		m.NumNodes, m.NumEdges, m.Density, m.AvgInDegree)

	printRanking("top influencers (followers)", m.TopInfluencers)
	printRanking("top active (followings)", m.TopActive)
}

func printRanking(title string, stats []graph.UserStat) {
	if len(stats) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)

	nameWidth := 0
	for _, s := range stats {
		if w := runewidth.StringWidth(displayName(s)); w > nameWidth {
			nameWidth = w
		}
	}
	for _, s := range stats {
		name := displayName(s)
		pad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(name))
		fmt.Printf("    %s%s  %d\n", name, pad, s.Count)
	}
}

func displayName(s graph.UserStat) string {
	if s.Name == "" {
		return "user " + s.ID
	}
	return fmt.Sprintf("%s (id %s)", s.Name, s.ID)
}

package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/internal/iositemap"
	"github.com/spf13/cobra"
)

var (
	sitemapMaster string
	sitemapOut    string
	sitemapURL    string
)

func getSitemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Emit sitemap XML for the browsing front-end",
		Long: `Read the master table and write sitemap XML with one URL per
species record and one per distinct host plant. Identifiers are UUIDs
derived from the display names, stable across runs.

Examples:
  hpdb sitemap --master data/master.csv --out sitemap.xml
  hpdb sitemap -m data/master.csv -o sitemap.xml -u https://example.org`,
		RunE: runSitemap,
	}

	cmd.Flags().StringVarP(&sitemapMaster, "master", "m", "",
		"path of the master table (default from config.yaml)")
	cmd.Flags().StringVarP(&sitemapOut, "out", "o", "sitemap.xml",
		"path of the sitemap file to write")
	cmd.Flags().StringVarP(&sitemapURL, "base-url", "u",
		"https://hpdb.example.org", "base URL of the front-end")

	return cmd
}

func runSitemap(cmd *cobra.Command, args []string) error {
	master := sitemapMaster
	if master == "" {
		master = cfg.Consolidate.BaseFile
	}

	s := iositemap.New()
	err := s.Write(context.Background(), master, sitemapOut, sitemapURL)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

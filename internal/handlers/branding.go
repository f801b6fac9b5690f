package handlers

import (
	"github.com/gofiber/fiber/v3"

	"helix/internal/config"
	"helix/internal/corpus"
)

// Default footer when SITE_FOOTER is unset.
const defaultFooter = "Simulated spatial transcriptomics data. Not for clinical use."

// MergeBranding adds the site title, tagline and footer used by the layout.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	footer := cfg.SiteFooter
	if footer == "" {
		footer = defaultFooter
	}
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = footer
	return data
}

// corpusStats is the record and target count shown under the query form.
func corpusStats(c *corpus.Corpus) fiber.Map {
	return fiber.Map{
		"Records":        c.RecordCount(),
		"Targets":        c.TargetCount(),
		"OutlierTargets": len(c.OutlierTargets()),
	}
}

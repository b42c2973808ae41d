package cli

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/simaogato/networth/internal/domain"
)

// Completion describes the command line for shell completion.
// Install it with COMP_INSTALL=1 networth.
func Completion() *complete.Command {
	var assetSlugs, liabilitySlugs []string
	for _, c := range domain.AssetCategories {
		assetSlugs = append(assetSlugs, c.Info().Slug)
	}
	for _, c := range domain.LiabilityCategories {
		liabilitySlugs = append(liabilitySlugs, c.Info().Slug)
	}

	format := map[string]complete.Predictor{"format": predict.Set(Formats)}
	csvFiles := predict.Files("*.csv")

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":     {Flags: format},
			"assets":      {Flags: format},
			"liabilities": {Flags: format},
			"snapshots": {Flags: map[string]complete.Predictor{
				"n":      predict.Something,
				"format": predict.Set(Formats),
			}},
			"add-asset": {Flags: map[string]complete.Predictor{
				"id":             predict.Something,
				"name":           predict.Something,
				"category":       predict.Set(assetSlugs),
				"purchase-date":  predict.Something,
				"purchase-price": predict.Something,
				"value":          predict.Something,
				"debt":           predict.Something,
				"notes":          predict.Something,
			}},
			"add-liability": {Flags: map[string]complete.Predictor{
				"id":       predict.Something,
				"name":     predict.Something,
				"category": predict.Set(liabilitySlugs),
				"original": predict.Something,
				"balance":  predict.Something,
				"rate":     predict.Something,
				"start":    predict.Something,
				"asset":    predict.Something,
				"notes":    predict.Something,
			}},
			"delete-asset":     {Flags: map[string]complete.Predictor{"y": predict.Nothing}, Args: predict.Something},
			"delete-liability": {Flags: map[string]complete.Predictor{"y": predict.Nothing}, Args: predict.Something},
			"snapshot":         {Flags: map[string]complete.Predictor{"note": predict.Something}},
			"export":           {Flags: map[string]complete.Predictor{"o": csvFiles}},
			"template":         {Flags: map[string]complete.Predictor{"o": csvFiles}},
			"import":           {Args: csvFiles},
			"reset":            {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"seed":             {},
			"serve":            {},
			"help":             {},
			"commands":         {},
			"flags":            {},
		},
	}
}

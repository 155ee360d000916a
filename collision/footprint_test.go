package collision

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"
)

const footprintJSON = `{
	"shape": {"width": 2, "height": 4},
	"circles_approximation": {
		"circles": [
			{"center": {"x": 1, "y": 1}, "radius": 1},
			{"center": {"x": 1, "y": 3}, "radius": 1}
		]
	}
}`

func TestParseFootprintConfig(t *testing.T) {
	var cfg FootprintConfig
	test.That(t, json.Unmarshal([]byte(footprintJSON), &cfg), test.ShouldBeNil)

	fp, err := ParseFootprintConfig(cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fp.Width, test.ShouldEqual, 2.0)
	test.That(t, fp.Height, test.ShouldEqual, 4.0)
	test.That(t, fp.Circles, test.ShouldHaveLength, 2)

	// Corner-relative centers convert to vehicle-frame offsets.
	test.That(t, fp.Circles[0].Offset.X, test.ShouldAlmostEqual, 0)
	test.That(t, fp.Circles[0].Offset.Y, test.ShouldAlmostEqual, -1)
	test.That(t, fp.Circles[1].Offset.X, test.ShouldAlmostEqual, 0)
	test.That(t, fp.Circles[1].Offset.Y, test.ShouldAlmostEqual, 1)
}

func TestFootprintConfigValidation(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(cfg *FootprintConfig)
		errMsg string
	}{
		{
			"zero width",
			func(cfg *FootprintConfig) { cfg.Shape.Width = 0 },
			"positive shape width",
		},
		{
			"negative height",
			func(cfg *FootprintConfig) { cfg.Shape.Height = -1 },
			"positive shape height",
		},
		{
			"no circles",
			func(cfg *FootprintConfig) { cfg.CirclesApproximation.Circles = nil },
			"at least one footprint circle",
		},
		{
			"zero radius",
			func(cfg *FootprintConfig) { cfg.CirclesApproximation.Circles[1].Radius = 0 },
			"circles.1: expected positive radius",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var cfg FootprintConfig
			test.That(t, json.Unmarshal([]byte(footprintJSON), &cfg), test.ShouldBeNil)
			tc.mutate(&cfg)

			_, err := ParseFootprintConfig(cfg)
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.errMsg)
		})
	}
}

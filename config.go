package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the interaction knobs the prototype variants disagreed on,
// plus export settings. Loaded from ~/.proofboardrc, key=value lines,
// '#' comments.
type Config struct {
	DropStyle     dropStyle
	OverlayStyle  overlayStyle
	ClampPolicy   clampPolicy
	DragThreshold float64
	CollapseWidth int
	SaveDirectory string
	StartPanel    bool
}

func defaultConfig() *Config {
	return &Config{
		DropStyle:     dropContinuous,
		OverlayStyle:  overlayAnimated,
		ClampPolicy:   clampMargin,
		DragThreshold: defaultContinuousThreshold,
		CollapseWidth: defaultCollapseWidth,
		StartPanel:    true,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	file, err := os.Open(filepath.Join(homeDir, ".proofboardrc"))
	if err != nil {
		return config
	}
	defer file.Close()

	parseConfig(config, file, homeDir)
	return config
}

func parseConfig(config *Config, file io.Reader, homeDir string) {
	thresholdSet := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "dropstyle", "drop_style":
			switch strings.ToLower(value) {
			case "absolute":
				config.DropStyle = dropAbsolute
			case "continuous":
				config.DropStyle = dropContinuous
			}
		case "overlaystyle", "overlay_style":
			switch strings.ToLower(value) {
			case "static":
				config.OverlayStyle = overlayStatic
			case "animated":
				config.OverlayStyle = overlayAnimated
			}
		case "clamppolicy", "clamp_policy":
			switch strings.ToLower(value) {
			case "edge":
				config.ClampPolicy = clampEdge
			case "margin":
				config.ClampPolicy = clampMargin
			}
		case "dragthreshold", "drag_threshold":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v >= 0 {
				config.DragThreshold = v
				thresholdSet = true
			}
		case "collapsewidth", "collapse_width":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				config.CollapseWidth = v
			}
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "startpanel", "start_panel":
			config.StartPanel = strings.ToLower(value) == "true"
		}
	}

	// The styles use different default thresholds; only an explicit value
	// overrides them.
	if !thresholdSet && config.DropStyle == dropAbsolute {
		config.DragThreshold = defaultAbsoluteThreshold
	}
}

// GetSavePath resolves an export filename against the configured directory.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

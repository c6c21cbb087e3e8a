package config

import (
	"strings"
)

// mergeCommands replaces base commands with overlay commands of the same name
// in place and appends the overlay commands that are new.
func mergeCommands(base []CommandConfig, overlay []CommandConfig) []CommandConfig {
	if len(base) == 0 {
		return append([]CommandConfig(nil), overlay...)
	}
	if len(overlay) == 0 {
		return append([]CommandConfig(nil), base...)
	}

	overlayByName := make(map[string]CommandConfig, len(overlay))
	for _, cmd := range overlay {
		name := strings.TrimSpace(cmd.Name)
		if name == "" {
			continue
		}
		overlayByName[name] = cmd
	}

	merged := make([]CommandConfig, 0, len(base)+len(overlay))
	for _, cmd := range base {
		name := strings.TrimSpace(cmd.Name)
		if replacement, ok := overlayByName[name]; ok {
			merged = append(merged, replacement)
			delete(overlayByName, name)
			continue
		}
		merged = append(merged, cmd)
	}

	for _, cmd := range overlay {
		name := strings.TrimSpace(cmd.Name)
		if _, ok := overlayByName[name]; ok {
			merged = append(merged, cmd)
			delete(overlayByName, name)
		}
	}
	return merged
}

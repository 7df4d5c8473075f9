package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// ModelProbe asks a backend at the given base URL for its installed model
// names. The wizard uses it to offer a live selection when the backend is
// reachable; on error the wizard falls back to manual entry.
type ModelProbe func(baseURL string) ([]string, error)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .coursetrail.yml.
func RunWizard(probe ModelProbe) (*Config, error) {
	fmt.Println("Welcome to coursetrail! Let's configure your setup.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Backend address.
	backendPrompt := promptui.Prompt{
		Label:   "Course backend URL",
		Default: defaults.BackendURL,
	}
	backendURL, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}

	// 2. Default model, from the backend when it answers.
	var model string
	var models []string
	if probe != nil {
		models, err = probe(backendURL)
		if err != nil {
			fmt.Printf("Could not reach the backend (%v); enter a model name manually.\n", err)
		}
	}
	if len(models) > 0 {
		modelSelect := promptui.Select{
			Label: "Default model",
			Items: models,
		}
		_, model, err = modelSelect.Run()
		if err != nil {
			return nil, fmt.Errorf("model selection: %w", err)
		}
	} else {
		modelPrompt := promptui.Prompt{
			Label:   "Default model (leave blank to choose per course)",
			Default: "",
		}
		model, err = modelPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
	}

	// 3. UI port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the coursetrail UI",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Export directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for course exports",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := DefaultConfig()
	cfg.BackendURL = backendURL
	cfg.Model = model
	cfg.Port = port
	cfg.OutputDir = outputDir

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/utils"
)

const configFolder = ".fvm-cli"

var configKeys = []string{"output", "hex-prefix"}

func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFolder), nil
}

func initConfig() {
	dir, err := configDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error getting home directory:", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "Error creating config directory:", err)
		os.Exit(1)
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if _, err := os.Create(configFile); err != nil {
			fmt.Fprintln(os.Stderr, "Error creating config file:", err)
			os.Exit(1)
		}
	}

	// Set config name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
		// Config file not found; will be created when needed
	}
}

func isJSONOutputRequested(cmd *cobra.Command) (bool, error) {
	output, err := getConfigValue(cmd, "output", false)
	if err != nil {
		return false, fmt.Errorf("failed to get output format: %w", err)
	}
	return strings.ToLower(output) == "json", nil
}

// hexFormat picks the display prefix from the flag, then the config.
func hexFormat(cmd *cobra.Command) (codec.Format, error) {
	if cmd.Flags().Changed("hex-prefix") {
		prefix, err := cmd.Flags().GetBool("hex-prefix")
		if err != nil {
			return codec.RawFormat, err
		}
		return codec.Format{Prefix: prefix}, nil
	}
	value := viper.GetString("hex-prefix")
	if value == "" {
		return codec.RawFormat, nil
	}
	prefix, err := strconv.ParseBool(value)
	if err != nil {
		return codec.RawFormat, fmt.Errorf("invalid hex-prefix config value %q: %w", value, err)
	}
	return codec.Format{Prefix: prefix}, nil
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return err
	}

	if isJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}
	utils.Fprintf(cmd.OutOrStdout(), "%s\n", v.String())
	return nil
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	// Check explicitly set flags first
	if cmd.Flags().Changed(key) {
		return cmd.Flags().GetString(key)
	}

	// Then check viper
	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	// Then fall back to the flag default
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value, nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}

	return "", nil
}

func setConfigValue(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// decodeFileOrHex accepts a hex payload or the path of a file holding
// one.
func decodeFileOrHex(fileNameOrHex string) ([]byte, error) {
	if decoded, err := codec.LoadHex(strings.TrimSpace(fileNameOrHex), -1); err == nil {
		return decoded, nil
	}

	if fileContents, err := os.ReadFile(fileNameOrHex); err == nil {
		return codec.LoadHex(strings.TrimSpace(string(fileContents)), -1)
	}

	return nil, errors.New("unable to decode input as hex, or read as file path")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted settings",
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Persist a setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: configKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := setConfigValue(key, value); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		logger.Info("config updated")
		return printValue(cmd, configCmdResponse{Key: key, Value: value})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConfigValue(args[0], ""); err != nil {
			return err
		}
		return printValue(cmd, configCmdResponse{
			Key:   args[0],
			Value: viper.GetString(args[0]),
		})
	},
}

// validateConfigValue checks [key] and, when not empty, [value].
func validateConfigValue(key, value string) error {
	switch key {
	case "output":
		if value != "" && value != "text" && value != "json" {
			return fmt.Errorf("output must be text or json, got %q", value)
		}
	case "hex-prefix":
		if value != "" {
			if _, err := strconv.ParseBool(value); err != nil {
				return fmt.Errorf("hex-prefix must be a bool: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown config key %q, expected one of %s", key, strings.Join(configKeys, ", "))
	}
	return nil
}

type configCmdResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r configCmdResponse) String() string {
	return r.Key + ": " + r.Value
}

func init() {
	configCmd.AddCommand(configSetCmd, configGetCmd)
	rootCmd.AddCommand(configCmd)
}

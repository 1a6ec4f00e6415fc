// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
	"github.com/anwarchk/cf-cleaner/pkg/cleaner"
	"github.com/anwarchk/cf-cleaner/pkg/logger"
	"github.com/anwarchk/cf-cleaner/pkg/names"
	"github.com/anwarchk/cf-cleaner/pkg/uaaclient"
)

var opts struct {
	apiEndpoint       string
	uaaEndpoint       string
	clientID          string
	clientSecret      string
	skipSSLValidation bool
	namePrefix        string
	timeout           time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "cf-cleaner",
	Short: "Remove leftover test fixtures from a Cloud Foundry test installation",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log, err := logger.NewCliLogger()
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		logger.SetLogger(log)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := cfclient.NewClient(cfclient.Config{
			APIEndpoint:       opts.apiEndpoint,
			TokenEndpoint:     opts.uaaEndpoint,
			ClientID:          opts.clientID,
			ClientSecret:      opts.clientSecret,
			SkipSSLValidation: opts.skipSSLValidation,
		})
		if err != nil {
			return err
		}
		uaa, err := uaaclient.NewClient(uaaclient.Config{
			Endpoint:          opts.uaaEndpoint,
			ClientID:          opts.clientID,
			ClientSecret:      opts.clientSecret,
			SkipSSLValidation: opts.skipSSLValidation,
		})
		if err != nil {
			return err
		}

		c := cleaner.New(logger.Log, cf, uaa, names.NewFactory(opts.namePrefix),
			cleaner.WithTimeout(opts.timeout))

		cleanErr := c.Clean(cmd.Context())
		if err := c.RenderStats(os.Stdout); err != nil {
			logger.Log.Error(err, "unable to render cleanup statistics")
		}
		return cleanErr
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	logger.InitFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().StringVar(&opts.apiEndpoint, "api", "", "URL of the cloud controller API")
	rootCmd.Flags().StringVar(&opts.uaaEndpoint, "uaa", "", "URL of the UAA")
	rootCmd.Flags().StringVar(&opts.clientID, "client-id", "", "OAuth client id used for both APIs")
	rootCmd.Flags().StringVar(&opts.clientSecret, "client-secret", "", "OAuth client secret used for both APIs")
	rootCmd.Flags().BoolVar(&opts.skipSSLValidation, "skip-ssl-validation", false, "skip TLS certificate verification")
	rootCmd.Flags().StringVar(&opts.namePrefix, "name-prefix", names.DefaultPrefix, "prefix that marks test fixtures")
	rootCmd.Flags().DurationVar(&opts.timeout, "timeout", cleaner.DefaultTimeout, "deadline for the whole cleanup")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetConfigName("cleaner")
	viper.AddConfigPath("$HOME/.cf-cleaner")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return
		}
		fmt.Printf("Cannot read config file from %s: %v \n", viper.ConfigFileUsed(), err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log.Error(err, "cleanup failed")
		os.Exit(1)
	}
}

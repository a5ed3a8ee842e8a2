// Package radial 实现 radial 命令行
package radial

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewRootCmd 创建根命令及全部子命令
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "radial",
		Short: "Radial pie menu",
		Long: `Radial shows a pie menu of configured elements around the cursor.
Hold the activation key, point at an element and release to send its keybind.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfgFile); err != nil {
				return err
			}
			bindFlags(cmd, nil)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "CLI defaults file (default is $HOME/.radial.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("wheel-config", "", "Wheel config YAML (default is the embedded data/config/wheel.yaml)")

	rootCmd.AddCommand(newRunCmd(), newLayoutCmd())
	return rootCmd
}

// Execute 运行命令行，main.main() 调用一次
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".radial")
	}

	viper.SetEnvPrefix("radial")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	log.Printf("Using config file: %s", viper.ConfigFileUsed())
	return nil
}

// bindFlags 把配置文件/环境变量的值应用到未显式设置的参数上，命令行参数优先
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// 配置文件里使用 camelCase，viper 比较时不区分大小写，只需去掉连字符
		configName := strings.ReplaceAll(f.Name, "-", "")

		if f.Changed {
			return
		}
		var val any
		switch {
		case viper.IsSet(configName):
			val = viper.Get(configName)
		case viper.IsSet(f.Name):
			val = viper.Get(f.Name)
		default:
			return
		}

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			log.Printf("Error setting flag %s: %s", f.Name, err)
			return
		}
		log.Printf("Flag '%s' set to config value %v", f.Name, val)
	})
}

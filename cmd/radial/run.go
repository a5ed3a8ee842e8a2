package radial

import (
	"fmt"

	"github.com/decker502/radial/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		appName string
		memory  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the radial menu window",
		Long:  `Open a window with the configured wheel. Element visibility and order are saved between runs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			wheelConfig, _ := cmd.Flags().GetString("wheel-config")

			a, err := app.NewApp(app.Config{
				Verbose:    verbose,
				ConfigPath: wheelConfig,
				AppName:    appName,
				Memory:     memory,
			})
			if err != nil {
				return err
			}

			win := a.WindowConfig()
			ebiten.SetWindowSize(win.Width, win.Height)
			ebiten.SetWindowTitle(win.Title)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			if err := ebiten.RunGame(a); err != nil {
				return fmt.Errorf("game loop: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", app.DefaultAppName, "Storage name for saved element settings")
	cmd.Flags().BoolVar(&memory, "memory", false, "Keep element settings in memory only")
	return cmd
}

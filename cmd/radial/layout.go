package radial

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/decker502/radial/pkg/app"
	"github.com/decker502/radial/pkg/config"
	"github.com/decker502/radial/pkg/game"
	"github.com/decker502/radial/pkg/systems"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/spf13/cobra"
)

// squareIcons 不读取图标文件，所有元素使用正方形占位贴图
type squareIcons struct{}

func (squareIcons) RegisterIcon(wheel.ElementID, string) {}

func (squareIcons) LoadTexture(wheel.ElementID) (*wheel.Texture, error) {
	return &wheel.Texture{Width: 1, Height: 1}, nil
}

// layoutOptions layout 子命令参数
type layoutOptions struct {
	atMs            int64
	pointerAngle    float64
	pointerDistance float64
	hasPointer      bool
	placeholder     bool
	appName         string
	persisted       bool
}

func newLayoutCmd() *cobra.Command {
	opts := layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed slot layout",
		Long: `Build the wheel from the config, open it and print one frame of layout:
slot angles, positions, diameters and opacities. Useful for tuning radius and packing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wheelConfig, _ := cmd.Flags().GetString("wheel-config")
			opts.hasPointer = cmd.Flags().Changed("pointer-angle")

			cfg, err := app.LoadConfig(app.Config{ConfigPath: wheelConfig})
			if err != nil {
				return err
			}
			return printLayout(cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.atMs, "at", 1000, "Milliseconds after activation to sample")
	cmd.Flags().Float64Var(&opts.pointerAngle, "pointer-angle", 0, "Pointer angle in degrees, clockwise from 12 o'clock")
	cmd.Flags().Float64Var(&opts.pointerDistance, "pointer-distance", -1, "Pointer distance from the center (default is the radius)")
	cmd.Flags().BoolVar(&opts.placeholder, "placeholder", false, "Use square placeholder icons instead of loading them")
	cmd.Flags().StringVar(&opts.appName, "app-name", app.DefaultAppName, "Storage name for saved element settings")
	cmd.Flags().BoolVar(&opts.persisted, "persisted", false, "Apply saved visibility and order")
	return cmd
}

func printLayout(out io.Writer, cfg *config.Config, opts layoutOptions) error {
	var icons app.IconRegistrar = game.NewResourceManager()
	if opts.placeholder {
		icons = squareIcons{}
	}
	var store wheel.ConfigStore
	if opts.persisted {
		store = game.OpenElementStore(opts.appName)
	}

	built, err := app.BuildWheel(cfg.Wheel, store, icons, systems.NewKeybindRegistry())
	if err != nil {
		return err
	}
	w := built.Wheel
	w.SetCenter(float64(cfg.Window.Width)/2, float64(cfg.Window.Height)/2)

	var pointer *wheel.Pointer
	if opts.hasPointer {
		dist := opts.pointerDistance
		if dist < 0 {
			dist = cfg.Wheel.Radius
		}
		pointer = &wheel.Pointer{Angle: opts.pointerAngle * math.Pi / 180, Distance: dist}
	}

	// 第一帧确定悬停目标，第二帧采样动画
	w.Trigger(0)
	w.Update(0, pointer)
	frame := w.Update(wheel.MsTime(opts.atMs), pointer)

	cx, cy := w.Center()
	fmt.Fprintf(out, "wheel %s: %d visible of %d, radius %.1f, center (%.1f, %.1f), t=%dms\n",
		w.Name(), w.VisibleCount(), len(w.Elements()), cfg.Wheel.Radius, cx, cy, opts.atMs)
	for _, s := range built.Skipped {
		fmt.Fprintf(out, "skipped: %v\n", s)
	}
	for _, inc := range built.Inconsistencies {
		fmt.Fprintf(out, "warning: %v\n", inc)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tID\tNICKNAME\tANGLE\tX\tY\tDIAMETER\tHEIGHT\tOPACITY\tSTATE")
	for _, r := range frame {
		state := "inactive"
		switch {
		case r.Hovered:
			state = "hovered"
		case r.Active:
			state = "active"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.2f\t%s\n",
			r.Slot, r.ID, r.Nickname, r.Angle*180/math.Pi, r.X, r.Y, r.Diameter, r.Height(), r.Opacity, state)
	}
	return tw.Flush()
}

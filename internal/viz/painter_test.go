package viz

import (
	"testing"

	"github.com/robolab/ddrive/internal/config"
	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/playback"
)

func samplePath(t *testing.T) (*kinematics.Path, *config.Config) {
	t.Helper()
	cfg := config.GetPreset("lap")
	cmds, err := cfg.Commands()
	if err != nil {
		t.Fatalf("commands: %v", err)
	}
	path, err := kinematics.ComputePath(cfg.InitialPose(), cmds, cfg.Params())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return path, cfg
}

func TestPaint_DrawsSomething(t *testing.T) {
	path, cfg := samplePath(t)

	canvas := NewCanvas(60, 20)
	opts := cfg.PlaybackOptions()
	opts.Width = float64(canvas.PixelWidth())
	opts.Height = float64(canvas.PixelHeight())
	ctrl := playback.NewController(path, opts)
	ctrl.Apply(playback.EvResetView)

	Paint(canvas, path, ctrl.Frame(), cfg)

	lit := 0
	for row := 0; row < canvas.Rows; row++ {
		for col := 0; col < canvas.Cols; col++ {
			if canvas.CellBits(col, row) != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("paint produced an empty canvas")
	}
}

func TestVisibleTurns_GrowWithFrame(t *testing.T) {
	path, _ := samplePath(t)
	if len(path.Turns) == 0 {
		t.Skip("preset produced no turns")
	}

	if got := visibleTurns(path, 0); len(got) != 0 {
		t.Errorf("frame 0 shows %d turns, want 0", len(got))
	}
	if got := visibleTurns(path, path.Len()-1); len(got) != len(path.Turns) {
		t.Errorf("last frame shows %d turns, want %d", len(got), len(path.Turns))
	}
}

func TestHeadingSeries(t *testing.T) {
	path, _ := samplePath(t)

	series := headingSeries(path, 40)
	if len(series) == 0 {
		t.Fatal("empty heading series")
	}
	if len(series) > 40 {
		t.Errorf("series length %d exceeds requested 40", len(series))
	}

	if got := headingSeries(&kinematics.Path{}, 10); got != nil {
		t.Error("empty path should yield nil series")
	}
}

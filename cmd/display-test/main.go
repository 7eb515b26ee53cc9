// Command display-test exercises an SSD1306 display: a font test page, a
// TrueType banner, then an endless loop of opening and closing bars.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ssd1306"
	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/internal/config"
	"github.com/BeatGlow/ssd1306/internal/log"
	"github.com/BeatGlow/ssd1306/pixel"
)

var fontTestPage = []string{
	"ABCDEFGHIJKLMNOPQRSTU",
	"VWXYZ:0123456789; <=>",
	"abcdefghijklmnopqrstu",
	"vwxyz~({@}) !#$%^&*\"'",
}

func main() {
	configFlag := flag.String("config", "", "YAML configuration file")
	busFlag := flag.String("bus", "", "I²C bus name (default: use first available)")
	addrFlag := flag.Uint("addr", uint(ssd1306.DefaultI2CConfig.Addr), "I²C device address")
	speedFlag := flag.String("speed", "", "I²C bus speed, for example 400kHz")
	resetFlag := flag.String("reset", "", "Reset GPIO pin")
	widthFlag := flag.Int("width", 128, "Display width")
	heightFlag := flag.Int("height", 64, "Display height")
	externalFlag := flag.Bool("external-vcc", false, "Display is powered externally")
	imageFlag := flag.String("image", "", "PNG or BMP image shown after the banner")
	delayFlag := flag.Duration("delay", 10*time.Millisecond, "Delay between animation frames")
	debugFlag := flag.Bool("debug", false, "Log every command sent to the display")
	flag.Parse()

	if *debugFlag {
		log.SetLevel(log.LevelDebug)
	}

	cfg := config.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fatal(err)
		}
	}
	// Flags given on the command line win over the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bus":
			cfg.I2C.Bus = *busFlag
		case "addr":
			cfg.I2C.Addr = uint8(*addrFlag)
		case "speed":
			cfg.I2C.Speed = *speedFlag
		case "reset":
			cfg.I2C.Reset = *resetFlag
		case "width":
			cfg.Display.Width = *widthFlag
		case "height":
			cfg.Display.Height = *heightFlag
		case "external-vcc":
			cfg.Display.ExternalVCC = *externalFlag
		}
	})

	speed, err := cfg.I2C.Frequency()
	if err != nil {
		fatal(err)
	}

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	var reset gpio.PinOut
	if cfg.I2C.Reset != "" {
		if reset = gpioreg.ByName(cfg.I2C.Reset); reset == nil {
			fatal(fmt.Errorf("no GPIO pin named %q", cfg.I2C.Reset))
		}
	}

	conn, err := ssd1306.OpenI2C(&ssd1306.I2CConfig{
		Bus:   cfg.I2C.Bus,
		Addr:  cfg.I2C.Addr,
		Speed: speed,
	})
	if err != nil {
		fatal(err)
	}
	log.Info("using connection", "conn", conn)

	output, err := ssd1306.New(conn, &ssd1306.Config{
		Width:       cfg.Display.Width,
		Height:      cfg.Display.Height,
		ExternalVCC: cfg.Display.ExternalVCC,
		Reset:       reset,
	})
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	log.Info("using driver", "display", output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("hit control-c to stop...")
	err = run(ctx, output, *cfg.Display.Contrast, *imageFlag, *delayFlag)
	if cerr := output.Close(); cerr != nil {
		log.Error("close failed", cerr)
	}
	if err != nil && ctx.Err() == nil {
		fatal(err)
	}
}

func run(ctx context.Context, output *ssd1306.SSD1306, contrast uint8, path string, delay time.Duration) error {
	if err := output.SetContrast(contrast); err != nil {
		return err
	}

	if err := fontTest(output); err != nil {
		return err
	}
	if err := sleep(ctx, time.Second); err != nil {
		return err
	}

	if err := banner(output); err != nil {
		return err
	}
	if err := sleep(ctx, time.Second); err != nil {
		return err
	}

	if path != "" {
		if err := picture(output, path); err != nil {
			return err
		}
		if err := sleep(ctx, 2*time.Second); err != nil {
			return err
		}
	}

	for {
		if err := bars(ctx, output, delay); err != nil {
			return err
		}
	}
}

// fontTest fills the left half with a box and prints the whole glyph table on
// top of it, the second line erasing instead of drawing.
func fontTest(output *ssd1306.SSD1306) error {
	r := output.Bounds()
	output.Clear()
	output.DrawBox(0, 0, r.Dx()/2, r.Dy()-1, true, true)
	for i, line := range fontTestPage {
		output.DrawText(0, i*8, line, i != 1)
	}
	return output.Refresh()
}

// banner draws the driver name in Go Regular inside a rounded frame.
func banner(output *ssd1306.SSD1306) error {
	face, err := draw.TrueTypeFace(goregular.TTF, 12)
	if err != nil {
		return err
	}
	defer face.Close()

	r := output.Bounds()
	output.Clear()
	draw.RoundedRectangle(output, r, 4, pixel.On)
	output.DrawString(6, r.Dy()/2+4, face, "SSD1306", true)
	return output.Refresh()
}

// picture shows the image at path centered on the display. Colors are
// reduced to on and off by luminance, parts that do not fit are clipped.
func picture(output *ssd1306.SSD1306, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("decoded image", "path", path, "format", format, "size", img.Bounds().Size())

	var (
		r    = output.Bounds()
		size = img.Bounds().Size()
		at   = image.Pt((r.Dx()-size.X)/2, (r.Dy()-size.Y)/2)
	)
	output.Clear()
	draw.Draw(output, image.Rectangle{Min: at, Max: at.Add(size)}, img, img.Bounds().Min, draw.Src)
	return output.Refresh()
}

// bars opens a pair of vertical bars from the center with crossing diagonals
// at full contrast, then closes them again dimmed and inverted.
func bars(ctx context.Context, output *ssd1306.SSD1306, delay time.Duration) error {
	var (
		r      = output.Bounds()
		mid    = r.Dx()/2 - 1
		bottom = r.Dy() - 1
	)
	frame := func(x int, label bool) error {
		output.Clear()
		output.DrawLine(mid-x, 0, mid-x, bottom, true)
		output.DrawLine(mid+x, 0, mid+x, bottom, true)
		output.DrawLine(mid-x, 0, mid+x, bottom, true)
		output.DrawLine(mid-x, bottom, mid+x, 0, true)
		if label {
			output.DrawText(0, 0, "SSD1306 Driver", true)
		}
		if err := output.Refresh(); err != nil {
			return err
		}
		return sleep(ctx, delay)
	}

	if err := output.SetContrast(255); err != nil {
		return err
	}
	if err := output.SetInvert(false); err != nil {
		return err
	}
	for x := 0; x < mid; x++ {
		if err := frame(x, true); err != nil {
			return err
		}
	}

	if err := output.SetContrast(5); err != nil {
		return err
	}
	if err := output.SetInvert(true); err != nil {
		return err
	}
	for x := mid; x > 0; x-- {
		if err := frame(x, false); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func fatal(err error) {
	log.Error("fatal", err)
	os.Exit(1)
}

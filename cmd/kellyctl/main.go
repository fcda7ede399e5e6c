// cmd/kellyctl/main.go
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/kellyctl/internal/calibration"
	"github.com/tamzrod/kellyctl/internal/comm"
	"github.com/tamzrod/kellyctl/internal/config"
	"github.com/tamzrod/kellyctl/internal/controller"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: kellyctl [flags] <port> [command]

commands:
  monitor     real-time monitoring (default)
  single      one monitor read (for scripting)
  version     read firmware version
  config      read and decode calibration data
  phase       read phase current ADC values
  identify    check motor identification status
  shell       interactive console

flags:
`)
	flag.PrintDefaults()
}

func main() {
	var (
		cfgPath  = flag.String("config", "", "optional YAML config file")
		debug    = flag.Bool("debug", false, "trace TX/RX frames")
		interval = flag.Int("interval", 0, "monitor interval in ms (overrides config)")
		raw      = flag.Bool("raw", false, "config command: dump raw hex instead of decoding")
		asJSON   = flag.Bool("json", false, "single command: output JSON")
	)
	flag.Usage = usage
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)

	// --------------------
	// Load + validate config
	// --------------------

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
		if err := config.Validate(loaded); err != nil {
			log.Fatal().Err(err).Msg("config validation failed")
		}
		config.Normalize(loaded)
		cfg = loaded
	}

	if *debug || cfg.Link.Debug {
		log = log.Level(zerolog.DebugLevel)
	}
	if *interval > 0 {
		cfg.Poll.IntervalMs = *interval
	}

	port := cfg.Link.Port
	args := flag.Args()
	if len(args) > 0 {
		port = args[0]
		args = args[1:]
	}
	if port == "" {
		usage()
		os.Exit(2)
	}

	command := "monitor"
	if len(args) > 0 {
		command = args[0]
	}

	// --------------------
	// Open link
	// --------------------

	sp, err := comm.OpenSerial(port)
	if err != nil {
		log.Fatal().Err(err).Str("port", port).Msg("open failed")
	}
	defer sp.Close()
	log.Info().Str("port", port).Msg("connected")

	link := comm.NewLink(sp,
		comm.WithRetries(*cfg.Link.Retries),
		comm.WithLogger(log),
	)
	ctrl := controller.New(link)

	code := 0
	switch command {
	case "monitor":
		code = cmdMonitor(log, ctrl, cfg)
	case "single":
		code = cmdSingle(ctrl, cfg, *asJSON)
	case "version":
		code = cmdVersion(log, ctrl)
	case "config":
		code = cmdConfig(log, ctrl, *raw)
	case "phase":
		code = cmdPhase(log, ctrl)
	case "identify":
		code = cmdIdentify(log, ctrl)
	case "shell":
		code = runShell(ctrl, cfg)
	default:
		log.Error().Str("command", command).Msg("unknown command")
		usage()
		code = 2
	}
	os.Exit(code)
}

func cmdMonitor(log zerolog.Logger, ctrl *controller.Controller, cfg *config.Config) int {
	interval := time.Duration(cfg.Poll.IntervalMs) * time.Millisecond
	log.Info().Dur("interval", interval).Msg("starting monitor (Ctrl+C to stop)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := make(chan controller.PollResult)
	go ctrl.Run(ctx, interval, out)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("monitor stopped")
			return 0
		case res := <-out:
			if res.Err != nil {
				log.Warn().Err(res.Err).Msg("poll cycle failed")
				continue
			}
			printSnapshot(res.Snapshot, cfg.Vehicle.TireDiameterIn)
		}
	}
}

func cmdSingle(ctrl *controller.Controller, cfg *config.Config, asJSON bool) int {
	snap, err := ctrl.Poll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "poll failed: %v\n", err)
		return 1
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.Encode(snapshotJSON(snap, cfg.Vehicle.TireDiameterIn))
		return 0
	}

	printSnapshot(snap, cfg.Vehicle.TireDiameterIn)
	return 0
}

func cmdVersion(log zerolog.Logger, ctrl *controller.Controller) int {
	v, err := ctrl.Version()
	if err != nil {
		log.Error().Err(err).Msg("version read failed")
		return 1
	}
	fmt.Printf("firmware version: %s\n", v)
	return 0
}

func cmdConfig(log zerolog.Logger, ctrl *controller.Controller, raw bool) int {
	buf, err := ctrl.ReadCalibration()
	if err != nil {
		log.Error().Err(err).Msg("config read failed")
		return 1
	}

	if raw {
		fmt.Printf("raw config data (%d bytes):\n%s\n", len(buf), hex.EncodeToString(buf))
		return 0
	}

	printCalibration(calibration.DecodeAll(buf))
	return 0
}

func cmdPhase(log zerolog.Logger, ctrl *controller.Controller) int {
	adc, err := ctrl.PhaseCurrentADC()
	if err != nil {
		log.Error().Err(err).Msg("phase adc read failed")
		return 1
	}
	fmt.Printf("phase A: %d\nphase B: %d\nphase C: %d\n", adc.A, adc.B, adc.C)
	return 0
}

func cmdIdentify(log zerolog.Logger, ctrl *controller.Controller) int {
	active, err := ctrl.IdentifyActive()
	if err != nil {
		log.Error().Err(err).Msg("identify status read failed")
		return 1
	}
	if active {
		fmt.Println("motor identification: ACTIVE")
	} else {
		fmt.Println("motor identification: INACTIVE")
	}
	return 0
}

func printSnapshot(s controller.Snapshot, tireIn float64) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 50))
	fmt.Printf("  Throttle:      %d%%\n", s.TPSPedal)
	fmt.Printf("  Brake Pedal:   %d\n", s.BrakePedal)
	fmt.Printf("  Motor Speed:   %d RPM (%.1f MPH)\n", s.MotorSpeed, s.MPH(tireIn))
	fmt.Printf("  Phase Current: %d A\n", s.PhaseCurrent)
	fmt.Printf("  Battery:       %d V\n", s.BatteryVoltage)
	fmt.Printf("  Motor Temp:    %d C\n", s.MotorTemp)
	fmt.Printf("  Ctrl Temp:     %d C\n", s.ControllerTemp)
	fmt.Printf("  Direction:     %s\n", s.Direction())
	fmt.Printf("  Hall Sensors:  A=%t B=%t C=%t\n", s.HallA, s.HallB, s.HallC)
	if !s.Faults.IsZero() {
		fmt.Printf("  FAULTS:        %s\n", strings.Join(s.Faults.Decode(), ", "))
	}
	fmt.Println(strings.Repeat("=", 50))
}

func printCalibration(view *calibration.View) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	for _, name := range view.Names() {
		val, _ := view.Get(name)
		entry, _ := calibration.Lookup(name)
		ro := ""
		if entry.ReadOnly {
			ro = " (RO)"
		}
		fmt.Printf("  %s: %s%s\n", entry.Desc, val, ro)
	}
	fmt.Println(strings.Repeat("=", 60))
}

func snapshotJSON(s controller.Snapshot, tireIn float64) any {
	return struct {
		RPM            uint16   `json:"rpm"`
		MPH            float64  `json:"mph"`
		Throttle       uint8    `json:"throttle"`
		BatteryVoltage uint8    `json:"battery_voltage"`
		MotorTemp      uint8    `json:"motor_temp"`
		ControllerTemp uint8    `json:"controller_temp"`
		PhaseCurrent   uint8    `json:"phase_current"`
		Direction      string   `json:"direction"`
		HallA          bool     `json:"hall_a"`
		HallB          bool     `json:"hall_b"`
		HallC          bool     `json:"hall_c"`
		Faults         []string `json:"faults"`
	}{
		RPM:            s.MotorSpeed,
		MPH:            s.MPH(tireIn),
		Throttle:       s.TPSPedal,
		BatteryVoltage: s.BatteryVoltage,
		MotorTemp:      s.MotorTemp,
		ControllerTemp: s.ControllerTemp,
		PhaseCurrent:   s.PhaseCurrent,
		Direction:      s.Direction(),
		HallA:          s.HallA,
		HallB:          s.HallB,
		HallC:          s.HallC,
		Faults:         s.Faults.Decode(),
	}
}

// cmd/kellyctl/shell.go
package main

import (
	"encoding/hex"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/tamzrod/kellyctl/internal/calibration"
	"github.com/tamzrod/kellyctl/internal/config"
	"github.com/tamzrod/kellyctl/internal/controller"
)

// runShell provides an ishell backed interactive console on an open link.
func runShell(ctrl *controller.Controller, cfg *config.Config) int {
	sh := ishell.New()
	sh.SetPrompt("kelly> ")
	sh.Println("kelly controller console (help for commands, exit to quit)")

	sh.AddCmd(&ishell.Cmd{
		Name: "monitor",
		Help: "read one monitor snapshot",
		Func: func(c *ishell.Context) {
			snap, err := ctrl.Poll()
			if err != nil {
				c.Err(err)
				return
			}
			printSnapshot(snap, cfg.Vehicle.TireDiameterIn)
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "version",
		Help: "read firmware version",
		Func: func(c *ishell.Context) {
			v, err := ctrl.Version()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("firmware version: %s\n", v)
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "config",
		Help: "read and decode calibration data (config raw for hex dump)",
		Func: func(c *ishell.Context) {
			buf, err := ctrl.ReadCalibration()
			if err != nil {
				c.Err(err)
				return
			}
			if len(c.Args) > 0 && c.Args[0] == "raw" {
				c.Printf("raw config data (%d bytes):\n%s\n", len(buf), hex.EncodeToString(buf))
				return
			}
			printCalibration(calibration.DecodeAll(buf))
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "get",
		Help: "get one calibration parameter: get <name>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Println("usage: get <name>")
				return
			}
			name := c.Args[0]
			entry, ok := calibration.Lookup(name)
			if !ok {
				c.Printf("unknown parameter %q\n", name)
				return
			}
			buf, err := ctrl.ReadCalibration()
			if err != nil {
				c.Err(err)
				return
			}
			val, ok := calibration.DecodeField(buf, entry)
			if !ok {
				c.Printf("%s: not present in this firmware's config buffer\n", name)
				return
			}
			c.Printf("%s = %s\n", entry.Desc, val)
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "params",
		Help: "list known calibration parameter names",
		Func: func(c *ishell.Context) {
			var names []string
			for _, e := range calibration.Table {
				names = append(names, e.Name)
			}
			c.Println(strings.Join(names, "\n"))
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "phase",
		Help: "read phase current ADC values",
		Func: func(c *ishell.Context) {
			adc, err := ctrl.PhaseCurrentADC()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("phase A: %d  B: %d  C: %d\n", adc.A, adc.B, adc.C)
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "identify",
		Help: "identify [enter|quit|status] motor identification mode",
		Func: func(c *ishell.Context) {
			sub := "status"
			if len(c.Args) > 0 {
				sub = c.Args[0]
			}
			switch sub {
			case "enter":
				if err := ctrl.EnterIdentify(); err != nil {
					c.Err(err)
					return
				}
				c.Println("entered identification mode")
			case "quit":
				if err := ctrl.ExitIdentify(); err != nil {
					c.Err(err)
					return
				}
				c.Println("left identification mode")
			case "status":
				active, err := ctrl.IdentifyActive()
				if err != nil {
					c.Err(err)
					return
				}
				if active {
					c.Println("identification: ACTIVE")
				} else {
					c.Println("identification: INACTIVE")
				}
			default:
				c.Println("usage: identify [enter|quit|status]")
			}
		},
	})

	sh.Run()
	return 0
}

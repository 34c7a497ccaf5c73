package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pracucci/tetrisengine/pkg/engine"
)

var (
	inspectRotation    string
	inspectShape       string
	inspectOrientation string
	inspectTurns       int
	inspectLevel       uint32
)

var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump a rotation system's kick table, or a level's drop/lock-delay pair",
	Run: func(cmd *cobra.Command, args []string) {
		if inspectShape == "" {
			runInspectDelays()
			return
		}
		runInspectKicks()
	},
}

func init() {
	InspectCmd.Flags().StringVar(&inspectRotation, "rotation", "ocular", "Rotation system: ocular, classic, super")
	InspectCmd.Flags().StringVar(&inspectShape, "shape", "", "Shape to inspect (O, I, S, Z, T, L, J); omit to dump drop/lock delays instead")
	InspectCmd.Flags().StringVar(&inspectOrientation, "orientation", "N", "Orientation to inspect: N, E, S, W")
	InspectCmd.Flags().IntVar(&inspectTurns, "turns", 1, "Right turns to apply: 1 (CW), -1 (CCW), or 2 (180)")
	InspectCmd.Flags().Uint32Var(&inspectLevel, "level", 1, "Level to inspect drop/lock delay for")
}

func parseShape(name string) (engine.Shape, bool) {
	switch name {
	case "O":
		return engine.ShapeO, true
	case "I":
		return engine.ShapeI, true
	case "S":
		return engine.ShapeS, true
	case "Z":
		return engine.ShapeZ, true
	case "T":
		return engine.ShapeT, true
	case "L":
		return engine.ShapeL, true
	case "J":
		return engine.ShapeJ, true
	default:
		return 0, false
	}
}

func parseOrientation(name string) (engine.Orientation, bool) {
	switch name {
	case "N":
		return engine.OrientN, true
	case "E":
		return engine.OrientE, true
	case "S":
		return engine.OrientS, true
	case "W":
		return engine.OrientW, true
	default:
		return 0, false
	}
}

func runInspectKicks() {
	shape, ok := parseShape(inspectShape)
	if !ok {
		fmt.Printf("unknown shape %q\n", inspectShape)
		return
	}
	orientation, ok := parseOrientation(inspectOrientation)
	if !ok {
		fmt.Printf("unknown orientation %q\n", inspectOrientation)
		return
	}
	sys := parseRotation(inspectRotation)
	kicks := engine.Kicks(sys, shape, orientation, inspectTurns)
	fmt.Printf("rotation=%s shape=%s orientation=%s turns=%d\n", inspectRotation, inspectShape, inspectOrientation, inspectTurns)
	for i, k := range kicks {
		fmt.Printf("  [%d] dx=%d dy=%d\n", i, k.DX, k.DY)
	}
}

func runInspectDelays() {
	cfg := engine.DefaultConfig()
	if inspectLevel >= engine.Level20G {
		fmt.Printf("level=%d is at or above 20G: gravity is instantaneous, drop_delay does not apply\n", inspectLevel)
		return
	}
	fmt.Printf("level=%d drop_delay=%v lock_delay=%v ground_time_max=%v\n",
		inspectLevel, engine.DropDelay(inspectLevel), engine.LockDelay(inspectLevel), cfg.GroundTimeMax)
}

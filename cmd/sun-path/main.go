package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/solarpos"
)

func main() {
	var (
		lat     float64
		lon     float64
		dateStr string
		kind    string
	)
	flag.Float64Var(&lat, "lat", 23.0225, "latitude in degrees")
	flag.Float64Var(&lon, "lon", 72.5714, "longitude in degrees, east positive")
	flag.StringVar(&dateStr, "date", "", "date to compute the sun path for (YYYY-MM-DD, default today)")
	flag.StringVar(&kind, "model", string(solarpos.ModelClosedForm), "solar position model: closed-form or ephemeris")
	flag.Parse()

	var date time.Time
	if dateStr == "" {
		date = time.Now().UTC()
	} else {
		var err error
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			os.Exit(1)
		}
	}

	model := solarpos.New(solarpos.ModelKind(kind))
	path, err := model.SunPath(lat, lon, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing sun path: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sun path for %s at (%.4f, %.4f) [%s model]\n", date.Format("2006-01-02"), lat, lon, kind)
	fmt.Printf("Winter solstice noon elevation: %.2f°\n\n", solarpos.WinterSolsticeAngle(lat))
	fmt.Println("Hour  Elevation  Azimuth")
	for _, pos := range path {
		if pos.Elevation <= 0 {
			fmt.Printf("%02d:00      (sun below horizon)\n", pos.Hour)
			continue
		}
		fmt.Printf("%02d:00    %6.2f°  %7.2f°\n", pos.Hour, pos.Elevation, pos.Azimuth)
	}
}

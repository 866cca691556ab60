// Command d2dsim drops a handful of base stations and user equipments at
// random ranges and prints the resulting downlink link budgets.
package main

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	d2d "github.com/vamshivjkrsna/gym-d2d"
	"github.com/vamshivjkrsna/gym-d2d/device"
)

func main() {
	cfg := ReadAppConfig()
	rng := rand.New(rand.NewSource(cfg.Seed))

	log.Infof("scenario: %d BS, %d UE, cell radius %vm, carrier %vGHz",
		cfg.NumBS, cfg.NumUE, cfg.CellRadiusM, cfg.CarrierFreqGHz)

	overrides := device.Config{
		"carrier_freq_GHz": cfg.CarrierFreqGHz,
		"max_tx_power_dBm": cfg.TxPowerDbm,
	}

	stations := make([]*device.BaseStation, cfg.NumBS)
	for i := range stations {
		bs, err := device.NewBaseStation(device.Id(fmt.Sprintf("bs%d", i)), overrides)
		if err != nil {
			log.Fatal("base station: ", err)
		}
		stations[i] = bs
	}

	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	fmt.Printf("%-6s %-10s %12s %12s %12s %12s\n",
		"UE", "ServingBS", "BestRSRP", "RSSI", "NoiseFloor", "BestSINR")

	for i := 0; i < cfg.NumUE; i++ {
		ue, err := device.NewUserEquipment(device.Id(fmt.Sprintf("ue%d", i)),
			device.Config{"carrier_freq_GHz": cfg.CarrierFreqGHz})
		if err != nil {
			log.Fatal("user equipment: ", err)
		}

		candidates := make([]d2d.TxCandidate, len(stations))
		for j, bs := range stations {
			// at least 1m away, uniform within the cell radius
			candidates[j] = d2d.TxCandidate{Tx: bs, DistanceM: 1 + rng.Float64()*cfg.CellRadiusM}
		}

		link, err := d2d.EvaluateLinkMetric(ue, candidates)
		if err != nil {
			log.Fatal("link metric: ", err)
		}

		out := good
		if link.BestSINR < ue.SinrDb() {
			out = bad
		}
		out.Printf("%-6s %-10s %12.2f %12.2f %12.2f %12.2f\n",
			link.RxID, link.BestRSRPNode, link.BestRSRP, link.RSSI, link.N0, link.BestSINR)
	}
}

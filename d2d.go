// Package d2d evaluates radio link budgets between the devices of a
// device-to-device simulation. The device models in the device sub-package
// supply per-radio path loss and noise figures; this package aggregates them
// into per-receiver link metrics for SINR and scheduling logic.
package d2d

import (
	"github.com/wiless/vlib"

	"github.com/vamshivjkrsna/gym-d2d/device"
)

// Radio is the capability set link evaluation needs from a device. Both
// *device.BaseStation and *device.UserEquipment satisfy it.
type Radio interface {
	ID() device.Id
	CarrierFreqGHz() float64
	MaxTxPowerDbm() float64
	TxAntennaGainDbi() float64
	RxAntennaGainDbi() float64
	RxNoiseFloorDbm() float64
	SinrDb() float64
	IxMarginDb() float64
	FreeSpacePathLossDb(distanceM, txGainDb float64) (float64, error)
}

// TxCandidate is one transmitter visible to a receiver, at the distance the
// scenario layer currently places it.
type TxCandidate struct {
	Tx        Radio
	DistanceM float64
}

// LinkMetric is the link budget of a single receiver against a set of
// candidate transmitters. RSRP values are in dBm; the strongest transmitter
// is the wanted signal and the rest are interference.
type LinkMetric struct {
	RxID         device.Id
	FreqGHz      float64
	N0           float64 // effective noise floor in dBm, ix margin included
	TxIDs        []device.Id
	TxRSRP       vlib.VectorF
	RSSI         float64
	BestRSRP     float64
	BestRSRPNode device.Id
	BestSINR     float64
}

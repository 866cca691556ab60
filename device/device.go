// Package device models the RF configuration of the radios taking part in a
// device-to-device simulation: base stations and user equipments, their
// default parameter tables, and the free-space link-budget quantities
// (path loss, receiver noise floor) derived from them.
package device

import (
	"fmt"
	"math"

	"github.com/vamshivjkrsna/gym-d2d/conversion"
)

// SpeedOfLight in m/s, exact by SI definition.
const SpeedOfLight = 299792458.0

// Thermal noise power of a single 180kHz LTE resource block.
// https://en.wikipedia.org/wiki/Johnson%E2%80%93Nyquist_noise#Noise_power_in_decibels
const ThermalNoisePowerDbm = -121.45

var (
	ThermalNoisePowerMw = conversion.DbToLinear(ThermalNoisePowerDbm)
	ThermalNoisePowerW  = conversion.DbmToW(ThermalNoisePowerDbm)
)

// CalcFSPLConstantDb returns the distance-independent part of the free-space
// path loss equation, 20log10(f) + 20log10(4pi/c), for a carrier frequency
// in GHz. All communications in a simulation share a fixed carrier, so this
// term is computed once per device and reused on every path-loss query.
func CalcFSPLConstantDb(carrierFreqGHz float64) float64 {
	return 20*math.Log10(carrierFreqGHz*1e9) + 20*math.Log10(4*math.Pi/SpeedOfLight)
}

// DistanceError reports a path-loss query at a non-positive distance, for
// which free-space path loss is undefined.
type DistanceError struct {
	DistanceM float64
}

func (e *DistanceError) Error() string {
	return fmt.Sprintf("device: free-space path loss undefined at distance %vm", e.DistanceM)
}

// baseParams is the typed view of the configuration fields every device kind
// shares. It is decoded once from the merged configuration at construction;
// accessors are plain field reads afterwards.
type baseParams struct {
	NumPRB               int     `mapstructure:"num_PRB"`
	CarrierFreqGHz       float64 `mapstructure:"carrier_freq_GHz"`
	SubcarrierQuantity   int     `mapstructure:"subcarrier_quantity"`
	SubcarrierSpacingKHz float64 `mapstructure:"subcarrier_spacing_kHz"`
	MaxTxPowerDbm        float64 `mapstructure:"max_tx_power_dBm"`
	AntennaHeightM       float64 `mapstructure:"antenna_height_m"`
	TxAntennaGainDbi     float64 `mapstructure:"tx_antenna_gain_dBi"`
	RxAntennaGainDbi     float64 `mapstructure:"rx_antenna_gain_dBi"`
	ThermalNoiseDbm      float64 `mapstructure:"thermal_noise_dBm"`
	NoiseFigureDb        float64 `mapstructure:"noise_figure_dB"`
	SinrDb               float64 `mapstructure:"sinr_dB"`
	IxMarginDb           float64 `mapstructure:"ix_margin_dB"`
}

// Device carries one radio's identity, its merged configuration and the
// cached free-space path-loss constant. It is immutable after construction
// and safe for concurrent read-only use.
type Device struct {
	id          Id
	cfg         Config
	params      baseParams
	fsplConstDb float64
}

func newDevice(id Id, cfg Config, p baseParams) Device {
	return Device{
		id:          id,
		cfg:         cfg,
		params:      p,
		fsplConstDb: CalcFSPLConstantDb(p.CarrierFreqGHz),
	}
}

// NewDevice builds a device from an already merged configuration. Callers
// normally go through NewBaseStation or NewUserEquipment instead, which
// layer the kind's default table under the overrides first.
func NewDevice(id Id, cfg Config) (*Device, error) {
	var p baseParams
	if err := decodeParams(cfg, &p); err != nil {
		return nil, err
	}
	d := newDevice(id, cfg, p)
	return &d, nil
}

func (d *Device) ID() Id {
	return d.id
}

// Config returns a copy of the device's merged configuration.
func (d *Device) Config() Config {
	return Merge(d.cfg, nil)
}

// Param looks up a configuration value by name, including override keys
// outside the typed parameter set. Absent keys are an error, never zero.
func (d *Device) Param(key string) (float64, error) {
	v, ok := d.cfg[key]
	if !ok {
		return 0, &MissingKeyError{Key: key}
	}
	return v, nil
}

// FreeSpacePathLossDb returns the free-space loss budget in dB between this
// device as receiver and a transmitter of gain txGainDb at distanceM metres:
//
//	FSPL = 20log10(d) + 20log10(f) + 20log10(4pi/c) - Gtx - Grx
//
// where the two frequency terms are the cached constant and Grx is this
// device's configured receive antenna gain.
func (d *Device) FreeSpacePathLossDb(distanceM, txGainDb float64) (float64, error) {
	if distanceM <= 0 {
		return 0, &DistanceError{DistanceM: distanceM}
	}
	return 20*math.Log10(distanceM) + d.fsplConstDb - txGainDb - d.params.RxAntennaGainDbi, nil
}

// RxNoiseFloorDbm is the receiver noise floor: configured noise figure on
// top of the configured thermal noise power.
func (d *Device) RxNoiseFloorDbm() float64 {
	return d.params.NoiseFigureDb + d.params.ThermalNoiseDbm
}

func (d *Device) NumPRB() int {
	return d.params.NumPRB
}

func (d *Device) CarrierFreqGHz() float64 {
	return d.params.CarrierFreqGHz
}

func (d *Device) SubcarrierQuantity() int {
	return d.params.SubcarrierQuantity
}

func (d *Device) SubcarrierSpacingKHz() float64 {
	return d.params.SubcarrierSpacingKHz
}

func (d *Device) MaxTxPowerDbm() float64 {
	return d.params.MaxTxPowerDbm
}

func (d *Device) AntennaHeightM() float64 {
	return d.params.AntennaHeightM
}

func (d *Device) TxAntennaGainDbi() float64 {
	return d.params.TxAntennaGainDbi
}

func (d *Device) RxAntennaGainDbi() float64 {
	return d.params.RxAntennaGainDbi
}

func (d *Device) NoiseFigureDb() float64 {
	return d.params.NoiseFigureDb
}

func (d *Device) ThermalNoiseDbm() float64 {
	return d.params.ThermalNoiseDbm
}

func (d *Device) SinrDb() float64 {
	return d.params.SinrDb
}

func (d *Device) IxMarginDb() float64 {
	return d.params.IxMarginDb
}

func (d *Device) FSPLConstantDb() float64 {
	return d.fsplConstDb
}

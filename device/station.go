package device

// Default parameter tables. The base-station and user-equipment tables layer
// their kind-specific values over the shared device table; all three are
// package-wide constants in spirit and are only ever read through Merge,
// which copies.
var DefaultDeviceConfig = Config{
	"num_PRB":                1,
	"carrier_freq_GHz":       2.1,
	"subcarrier_quantity":    12,
	"subcarrier_spacing_kHz": 30.0,
}

var DefaultBaseStationConfig = Merge(DefaultDeviceConfig, Config{
	"max_tx_power_dBm":           46.0,
	"antenna_height_m":           23.0,
	"tx_antenna_gain_dBi":        17.5,
	"rx_antenna_gain_dBi":        17.5,
	"thermal_noise_dBm":          -118.4,
	"noise_figure_dB":            2.0,
	"sinr_dB":                    -7.0,
	"ix_margin_dB":               2.0, // increase in noise from surrounding cells
	"cable_loss_dB":              2.0,
	"masthead_amplifier_gain_dB": 2.0,
})

var DefaultUEConfig = Merge(DefaultDeviceConfig, Config{
	"max_tx_power_dBm":            23.0,
	"antenna_height_m":            1.5,
	"tx_antenna_gain_dBi":         0.0,
	"rx_antenna_gain_dBi":         0.0,
	"thermal_noise_dBm":           -104.5,
	"noise_figure_dB":             7.0,
	"sinr_dB":                     -10.0,
	"ix_margin_dB":                3.0, // increase in noise from surrounding cells
	"control_channel_overhead_dB": 1.0,
	"body_loss_dB":                3.0,
})

type bsParams struct {
	CableLossDb             float64 `mapstructure:"cable_loss_dB"`
	MastheadAmplifierGainDb float64 `mapstructure:"masthead_amplifier_gain_dB"`
}

type ueParams struct {
	ControlChannelOverheadDb float64 `mapstructure:"control_channel_overhead_dB"`
	BodyLossDb               float64 `mapstructure:"body_loss_dB"`
}

// BaseStation is a Device seeded from the base-station default table, with
// the feeder-side extras a fixed site carries.
type BaseStation struct {
	Device
	params bsParams
}

// NewBaseStation builds a base station from the default table with the
// given overrides applied per key (override wins). overrides may be nil.
func NewBaseStation(id Id, overrides Config) (*BaseStation, error) {
	cfg := Merge(DefaultBaseStationConfig, overrides)
	var base baseParams
	if err := decodeParams(cfg, &base); err != nil {
		return nil, err
	}
	var p bsParams
	if err := decodeParams(cfg, &p); err != nil {
		return nil, err
	}
	return &BaseStation{Device: newDevice(id, cfg, base), params: p}, nil
}

func (b *BaseStation) CableLossDb() float64 {
	return b.params.CableLossDb
}

func (b *BaseStation) MastheadAmplifierGainDb() float64 {
	return b.params.MastheadAmplifierGainDb
}

// UserEquipment is a Device seeded from the user-equipment default table,
// with the handset-side extras.
type UserEquipment struct {
	Device
	params ueParams
}

// NewUserEquipment builds a user equipment from the default table with the
// given overrides applied per key (override wins). overrides may be nil.
func NewUserEquipment(id Id, overrides Config) (*UserEquipment, error) {
	cfg := Merge(DefaultUEConfig, overrides)
	var base baseParams
	if err := decodeParams(cfg, &base); err != nil {
		return nil, err
	}
	var p ueParams
	if err := decodeParams(cfg, &p); err != nil {
		return nil, err
	}
	return &UserEquipment{Device: newDevice(id, cfg, base), params: p}, nil
}

func (u *UserEquipment) ControlChannelOverheadDb() float64 {
	return u.params.ControlChannelOverheadDb
}

func (u *UserEquipment) BodyLossDb() float64 {
	return u.params.BodyLossDb
}

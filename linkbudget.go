package d2d

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"
)

// ErrNoCandidates is returned when a link metric is requested for a receiver
// with no transmitters in view.
var ErrNoCandidates = errors.New("d2d: no transmit candidates")

// maxSINRDb caps the reported SINR when interference plus noise vanishes
// below the signal's floating-point resolution.
const maxSINRDb = 1000.0

// EvaluateLinkMetric computes the link budget seen by rx against every
// candidate transmitter. Each transmitter is assumed to send at its
// configured power ceiling; its RSRP at the receiver is tx power minus the
// free-space loss budget (which already accounts for both antenna gains).
// Aggregation is done in the linear domain: RSSI is the sum of all received
// powers plus the noise floor, and the best SINR is the strongest RSRP over
// everything else.
func EvaluateLinkMetric(rx Radio, candidates []TxCandidate) (LinkMetric, error) {
	var link LinkMetric
	if len(candidates) == 0 {
		return link, ErrNoCandidates
	}

	link.RxID = rx.ID()
	link.FreqGHz = rx.CarrierFreqGHz()
	link.N0 = rx.RxNoiseFloorDbm() + rx.IxMarginDb()

	for _, c := range candidates {
		lossDb, err := rx.FreeSpacePathLossDb(c.DistanceM, c.Tx.TxAntennaGainDbi())
		if err != nil {
			return LinkMetric{}, err
		}
		rsrp := c.Tx.MaxTxPowerDbm() - lossDb
		link.TxIDs = append(link.TxIDs, c.Tx.ID())
		link.TxRSRP.AppendAtEnd(rsrp)
		log.Debugf("link %v<-%v: d=%vm PL=%.2fdB RSRP=%.2fdBm", link.RxID, c.Tx.ID(), c.DistanceM, lossDb, rsrp)
	}

	rsrpLin := vlib.InvDbF(link.TxRSRP)
	total := vlib.Sum(rsrpLin) + vlib.InvDb(link.N0)
	best := 0
	for i := 1; i < len(rsrpLin); i++ {
		if rsrpLin[i] > rsrpLin[best] {
			best = i
		}
	}

	link.RSSI = vlib.Db(total)
	link.BestRSRP = link.TxRSRP[best]
	link.BestRSRPNode = link.TxIDs[best]
	// The noise term is positive in the linear domain, but it can vanish in
	// the subtraction when it sits below the best RSRP's machine epsilon.
	rest := total - rsrpLin[best]
	if rest <= 0 {
		link.BestSINR = maxSINRDb
	} else {
		link.BestSINR = link.BestRSRP - vlib.Db(rest)
		if link.BestSINR > maxSINRDb {
			link.BestSINR = maxSINRDb
		}
	}

	return link, nil
}

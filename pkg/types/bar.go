package types

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Bar is a single OHLC candle, the unit of market data the magnet snaps
// against. Bars are always handed in as an already-resolved slice; this
// package never fetches.
type Bar struct {
	Time  int64   `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

func (b Bar) Mid() float64 {
	return (b.High + b.Low) / 2
}

// OHLC returns the four snap candidates in a fixed order.
func (b Bar) OHLC() [4]float64 {
	return [4]float64{b.Open, b.High, b.Low, b.Close}
}

// ReadBarsCSV reads bars from csv rows laid out as
// time,open,high,low,close with an optional header row.
func ReadBarsCSV(r io.Reader) ([]Bar, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5

	var bars []Bar
	for i := 0; ; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "csv read error at row %d", i)
		}

		ts, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, errors.Wrapf(err, "invalid timestamp %q at row %d", row[0], i)
		}

		var fields [4]float64
		for j := 1; j < 5; j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid price %q at row %d", row[j], i)
			}
			fields[j-1] = v
		}

		bars = append(bars, Bar{
			Time:  ts,
			Open:  fields[0],
			High:  fields[1],
			Low:   fields[2],
			Close: fields[3],
		})
	}

	return bars, nil
}

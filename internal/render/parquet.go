package render

import (
	"io"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/ayoisaiah/zwoparse/internal/workout"
)

// parquetRow mirrors the csv columns with typed values.
type parquetRow struct {
	Kind              string  `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	StartTime         int32   `parquet:"name=start_time, type=INT32"`
	EndTime           int32   `parquet:"name=end_time, type=INT32"`
	DurationSeconds   int32   `parquet:"name=duration_seconds, type=INT32"`
	DurationFormatted string  `parquet:"name=duration_formatted, type=BYTE_ARRAY, convertedtype=UTF8"`
	MinPower          float64 `parquet:"name=min_power, type=DOUBLE"`
	MinPowerPercent   int32   `parquet:"name=min_power_pct_ftp, type=INT32"`
	MinPowerWatts     int32   `parquet:"name=min_power_w, type=INT32"`
	MinPowerWkg       float64 `parquet:"name=min_power_w_kg, type=DOUBLE"`
	MaxPower          float64 `parquet:"name=max_power, type=DOUBLE"`
	MaxPowerPercent   int32   `parquet:"name=max_power_pct_ftp, type=INT32"`
	MaxPowerWatts     int32   `parquet:"name=max_power_w, type=INT32"`
	MaxPowerWkg       float64 `parquet:"name=max_power_w_kg, type=DOUBLE"`
	Cadence           *int32  `parquet:"name=cadence, type=INT32, repetitiontype=OPTIONAL"`
	Working           bool    `parquet:"name=working, type=BOOLEAN"`
}

type parquetRenderer struct{}

func (parquetRenderer) Render(w io.Writer, wo *workout.Workout, a Athlete) error {
	b, err := marshalParquet(wo.Segments, a)
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

func marshalParquet(segments []workout.Segment, a Athlete) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()

	pw, err := writer.NewParquetWriter(fw, new(parquetRow), 1)
	if err != nil {
		return nil, err
	}

	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range segments {
		if err := pw.Write(newParquetRow(&segments[i], a)); err != nil {
			_ = pw.WriteStop()
			return nil, err
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, err
	}

	if err := fw.Close(); err != nil {
		return nil, err
	}

	return append([]byte(nil), fw.Bytes()...), nil
}

func newParquetRow(s *workout.Segment, a Athlete) parquetRow {
	row := parquetRow{
		Kind:              string(s.Kind),
		StartTime:         int32(s.StartTime),
		EndTime:           int32(s.EndTime),
		DurationSeconds:   int32(s.Duration()),
		DurationFormatted: humanDuration(s),
		MinPower:          s.Power.Min,
		MinPowerPercent:   int32(Percent(s.Power.Min)),
		MinPowerWatts:     int32(Watts(s.Power.Min, a.FTP)),
		MinPowerWkg:       WattsPerKilo(s.Power.Min, a.FTP, a.Weight),
		MaxPower:          s.Power.Max,
		MaxPowerPercent:   int32(Percent(s.Power.Max)),
		MaxPowerWatts:     int32(Watts(s.Power.Max, a.FTP)),
		MaxPowerWkg:       WattsPerKilo(s.Power.Max, a.FTP, a.Weight),
		Working:           s.Working,
	}

	if s.Cadence != nil {
		rpm := int32(*s.Cadence)
		row.Cadence = &rpm
	}

	return row
}

// Package csvcodec читает и пишет общий формат строк CSV для импорта и
// экспорта команд: "Team name,Member name,Member email".
package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Header всегда пишется первой строкой и всегда пропускается при чтении
var Header = []string{"Team name", "Member name", "Member email"}

type Row struct {
	TeamName    string
	MemberName  string
	MemberEmail string
}

// ErrMalformedRow - строка содержит не три поля
var ErrMalformedRow = errors.New("csv row must have exactly 3 fields")

func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.TeamName, r.MemberName, r.MemberEmail}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []Row{}, nil
		}
		return nil, err
	}

	rows := make([]Row, 0)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("line %d: %w", line, ErrMalformedRow)
		}
		rows = append(rows, Row{TeamName: rec[0], MemberName: rec[1], MemberEmail: rec[2]})
	}
	return rows, nil
}

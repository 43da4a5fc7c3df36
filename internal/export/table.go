package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/robolab/ddrive/internal/kinematics"
)

// WriteCSV streams the sample table: one row per path sample.
func WriteCSV(w io.Writer, path *kinematics.Path) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"frame", "command", "x", "y", "heading", "axle_x", "axle_y", "turn"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, s := range path.Samples {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(s.Command),
			formatF(s.X),
			formatF(s.Y),
			formatF(s.Heading),
			formatF(s.Axle.X),
			formatF(s.Axle.Y),
			strconv.FormatBool(s.Turn),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatF(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// PathDocument is the JSON export shape.
type PathDocument struct {
	Initial kinematics.Pose         `json:"initial"`
	Frames  int                     `json:"frames"`
	Samples []kinematics.PathSample `json:"samples"`
	Turns   []kinematics.Point      `json:"turns"`
}

// WriteJSON writes the whole path as an indented JSON document.
func WriteJSON(w io.Writer, path *kinematics.Path) error {
	doc := PathDocument{
		Initial: path.Initial,
		Frames:  path.Len(),
		Samples: path.Samples,
		Turns:   path.Turns,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stolik/internal/history"
	"stolik/internal/models"
	"stolik/internal/timeline"
)

func TestMonthComparisonWorkbook(t *testing.T) {
	series := history.AlignedSeries{
		Current:            []float64{24, 31},
		PreviousAligned:    []float64{19, 0},
		PreviousWeekdayAvg: []float64{20.5, 18},
	}

	w, err := MonthComparisonWorkbook("2024-07", series)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("2024-07")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two days")
	assert.Equal(t, "Day", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "24", rows[1][1])
	assert.Equal(t, "20.5", rows[1][3])
}

func TestTimelineWorkbook(t *testing.T) {
	placed := []timeline.PositionedBooking{
		{
			Booking:      models.Booking{ID: 7, Table: "T2", PartySize: 4},
			Row:          0,
			RowSpan:      2,
			StartMinutes: 60,
			EndMinutes:   180,
		},
	}

	w, err := TimelineWorkbook("2024-07-05", timeline.Bounds{StartHour: 18, EndHour: 22}, placed)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("2024-07-05")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "T2", rows[1][1])
	assert.Equal(t, "2", rows[1][4])
}

func TestWriterRequiresSheet(t *testing.T) {
	w := NewExcelWriter()
	assert.Error(t, w.WriteHeader([]string{"a"}))
	assert.Error(t, w.WriteRow([]interface{}{1}))
}

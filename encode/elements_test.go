package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdoberfield/metar-iwxxm/record"
)

func TestAppendSectorsNormalizesWraparound(t *testing.T) {
	parent := NewElement("iwxxm-us:location")
	appendSectors(parent, "atStation", []record.Arc{{CCW: 337.5, CW: 22.5}})

	rendered := parent.Render()
	assert.Contains(t, rendered, ">-22.5<")
	assert.Contains(t, rendered, ">22.5<")
}

func TestAppendSectorsLeavesNonWrappingArcUnchanged(t *testing.T) {
	parent := NewElement("iwxxm-us:location")
	appendSectors(parent, "atStation", []record.Arc{{CCW: 22.5, CW: 67.5}})

	rendered := parent.Render()
	assert.Contains(t, rendered, ">22.5<")
	assert.Contains(t, rendered, ">67.5<")
}

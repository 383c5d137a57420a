package shapefile

import (
	"testing"
	"time"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
)

func numField(fieldtype byte) shp.Field {
	return shp.Field{Fieldtype: fieldtype}
}

func TestFieldValueNumeric(t *testing.T) {
	assert.Equal(t, int64(42), fieldValue(numField('N'), " 42 ", nil))
	assert.Equal(t, -7.5, fieldValue(numField('N'), "-7.5", nil))
	assert.Equal(t, 3.25, fieldValue(numField('F'), "3.25", nil))
}

func TestFieldValueLogical(t *testing.T) {
	assert.Equal(t, true, fieldValue(numField('L'), "T", nil))
	assert.Equal(t, true, fieldValue(numField('L'), "y", nil))
	assert.Equal(t, false, fieldValue(numField('L'), "N", nil))

	// '?' means uninitialized in dBASE, kept as text
	assert.Equal(t, "?", fieldValue(numField('L'), "?", nil))
}

func TestFieldValueDate(t *testing.T) {
	assert.Equal(t,
		time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC),
		fieldValue(numField('D'), "20210630", nil))

	// garbage dates stay textual
	assert.Equal(t, "2021XX30", fieldValue(numField('D'), "2021XX30", nil))
}

func TestFieldValueEmptyIsDropped(t *testing.T) {
	assert.Nil(t, fieldValue(numField('C'), "   ", nil))
	assert.Nil(t, fieldValue(numField('N'), "\x00\x00", nil))
}

func TestFieldValueCharacterDecoding(t *testing.T) {
	decode := decoderFor([]byte("ISO-8859-1"))
	assert.Equal(t, "café", fieldValue(numField('C'), "caf\xe9", decode))

	// UTF-8 code page needs no decoder
	assert.Nil(t, decoderFor([]byte("UTF-8")))
	assert.Nil(t, decoderFor(nil))
}

func TestDecoderForUnknownCodePage(t *testing.T) {
	assert.Nil(t, decoderFor([]byte("KLINGON-8")))
}

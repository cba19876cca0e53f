package pdfform

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTextFieldsDropsMissingAndNonText(t *testing.T) {
	existing := []form.Field{
		{Name: "Full Legal Name", Typ: form.FTText},
		{Name: "Age", Typ: form.FTText},
		{Name: "Consent", Typ: form.FTCheckBox},
	}
	requested := []Field{
		{Name: "Full Legal Name", Value: "Maria L Garcia"},
		{Name: "Consent", Value: "yes"},
		{Name: "Nonexistent", Value: "x"},
		{Name: "Age", Value: "29"},
	}

	kept := selectTextFields(existing, requested)
	require.Len(t, kept, 2)
	assert.Equal(t, "Full Legal Name", kept[0].Name)
	assert.Equal(t, "Age", kept[1].Name)
}

func TestSelectTextFieldsEmptyTemplate(t *testing.T) {
	kept := selectTextFields(nil, []Field{{Name: "Age", Value: "29"}})
	assert.Empty(t, kept)
}

func TestFillPayloadShape(t *testing.T) {
	payload, err := fillPayload([]Field{
		{Name: "Age", Value: "29"},
		{Name: "Weight", Value: ""},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"forms": [
			{"textfield": [
				{"name": "Age", "value": "29", "locked": false},
				{"name": "Weight", "value": "", "locked": false}
			]}
		]
	}`, string(payload))
}

func TestFillPayloadDeterministic(t *testing.T) {
	fields := []Field{{Name: "Age", Value: "29"}, {Name: "EMAIL", Value: "maria@test.com"}}
	first, err := fillPayload(fields)
	require.NoError(t, err)
	second, err := fillPayload(fields)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// fillOutput mimics the serialized tail of a filled document: an info
// dict carrying the write-time dates and a trailer with a clock-derived
// file ID. Only those portions vary between two fills of the same
// template and record.
func fillOutput(date, id1, id2 string) []byte {
	return []byte("%PDF-1.7\n" +
		"1 0 obj\n<</Producer(x)/CreationDate(" + date + ")/ModDate(" + date + ")>>\nendobj\n" +
		"trailer\n<</Size 9/Root 2 0 R/Info 1 0 R/ID[<" + id1 + "><" + id2 + ">]>>\n" +
		"startxref\n417\n%%EOF\n")
}

func TestStabilizeSameInputsSameBytes(t *testing.T) {
	first := fillOutput("D:20240101120000+05'00'", "aabbccddeeff00112233445566778899", "aabbccddeeff00112233445566778899")
	second := fillOutput("D:20240101120001-08'00'", "99887766554433221100ffeeddccbbaa", "0123456789abcdef0123456789abcdef")

	require.Equal(t, len(first), len(second))
	assert.Equal(t, stabilize(first, 7), stabilize(second, 7))
}

func TestStabilizePreservesLength(t *testing.T) {
	doc := fillOutput("D:20240101120000+05'00'", "aabbccddeeff00112233445566778899", "aabbccddeeff00112233445566778899")
	out := stabilize(doc, 7)

	assert.Equal(t, len(doc), len(out))
	assert.NotContains(t, string(out), "D:20240101120000")
	assert.Contains(t, string(out), "D:20000101000000+00'00'")
	// Offset table references survive untouched.
	assert.Contains(t, string(out), "startxref\n417")
}

func TestStabilizeBareDates(t *testing.T) {
	out := stabilize([]byte("(D:20240101120000)"), 7)
	assert.Equal(t, "(D:20000101000000)", string(out))
}

func TestFillSeedKeyedToInputs(t *testing.T) {
	template := []byte("%PDF-template")
	payload := []byte(`{"forms":[]}`)

	assert.Equal(t, fillSeed(template, payload), fillSeed(template, payload))
	assert.NotEqual(t, fillSeed(template, payload), fillSeed(template, []byte(`{"forms":[{}]}`)))

	id := deterministicHex(fillSeed(template, payload), 32)
	assert.Equal(t, deterministicHex(fillSeed(template, payload), 32), id)
	assert.Len(t, id, 32)
}

func TestFillerMissingTemplate(t *testing.T) {
	f := New("testdata/does-not-exist.pdf")
	_, err := f.Fill([]Field{{Name: "Age", Value: "29"}})
	require.Error(t, err)
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows_Latin1(t *testing.T) {
	// "Acetaminofén" en ISO-8859-1: é = 0xE9
	input := []byte("batch_no,drug_name,expiry_date,stock_quantity,price,sup_id,type\n" +
		"B001,Acetaminof\xe9n,2024-05-10,30,1.50,S01,Tableta\n" +
		"B002,Ibuprofeno,,5,2,,\n" +
		"B003,Jarabe,2024-06-01,abc,3,S01,Jarabe\n" +
		"B004,Corto,2024-06-01\n")

	rows, skipped, err := readRows(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acetaminofén", rows[0].drug)
	assert.Equal(t, "2024-05-10", rows[0].expiry)
	assert.Equal(t, 30, rows[0].stock)
	assert.Equal(t, "", rows[1].expiry)
}

func TestWriteSQL(t *testing.T) {
	rows, _, err := readRows(strings.NewReader("B001,O'Brien Gotas,2024-05-10,3,1.5,,Gotas\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeSQL(&out, rows))
	sql := out.String()
	assert.Contains(t, sql, "('B001', 'O''Brien Gotas', '2024-05-10', 3, 1.50, NULL, 'Gotas')")
	assert.Contains(t, sql, "ON CONFLICT (batch_no, drug_name)")
}

func TestWriteSQL_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeSQL(&out, nil))
	assert.NotContains(t, out.String(), "INSERT")
}

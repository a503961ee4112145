// Package cache encodes/decodes a core.Summary into a versioned binary
// envelope compressed with zstd, following the magic-bytes-plus-uvarint
// framing style of the teacher's codec package, adapted from conversation
// frames to summarization results.
package cache

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/textloom/summarizer/cmd/summarize/cli/core"
)

var magic = []byte("TLMS")

const formatVersion = 0x01

// Encode compresses a core.Summary into a self-describing byte slice.
func Encode(summary core.Summary) ([]byte, error) {
	payload := encodePayload(summary)

	zw, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("cache: create zstd encoder: %w", err)
	}
	defer zw.Close()

	compressed := zw.EncodeAll(payload, nil)
	return compressed, nil
}

// Decode reverses Encode, returning a reconstructed core.Summary. Any
// truncated or malformed input surfaces as a wrapped error, never a panic.
func Decode(compressed []byte) (core.Summary, error) {
	zr, err := zstd.NewReader(nil)
	if err != nil {
		return core.Summary{}, fmt.Errorf("cache: create zstd decoder: %w", err)
	}
	defer zr.Close()

	payload, err := zr.DecodeAll(compressed, nil)
	if err != nil {
		return core.Summary{}, fmt.Errorf("cache: zstd decode: %w", err)
	}
	return decodePayload(payload)
}

func encodePayload(summary core.Summary) []byte {
	buf := make([]byte, 0, 256)
	buf = append(buf, magic...)
	buf = append(buf, formatVersion)

	buf = appendUvarint(buf, uint64(len(summary.SalienceScores)))
	for _, s := range summary.SalienceScores {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s))
	}

	buf = appendUvarint(buf, uint64(len(summary.RelevantItemsets)))
	for _, is := range summary.RelevantItemsets {
		buf = appendString(buf, is.Text)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(is.Score))
	}

	buf = appendUvarint(buf, uint64(len(summary.RelevantKeywords)))
	for _, kw := range summary.RelevantKeywords {
		buf = appendString(buf, kw.Keyword)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(kw.Score))
	}

	return buf
}

func decodePayload(data []byte) (core.Summary, error) {
	if len(data) < 5 {
		return core.Summary{}, fmt.Errorf("cache: payload too short: %d bytes", len(data))
	}
	if string(data[0:4]) != string(magic) {
		return core.Summary{}, fmt.Errorf("cache: bad magic: %x", data[0:4])
	}
	if data[4] != formatVersion {
		return core.Summary{}, fmt.Errorf("cache: unsupported format version: %d", data[4])
	}

	pos := 5
	summary := core.Summary{}

	nSalience, n, err := readUvarint(data, pos)
	if err != nil {
		return core.Summary{}, fmt.Errorf("cache: %w", err)
	}
	pos = n
	if nSalience > uint64(len(data)-pos)/8 {
		return core.Summary{}, fmt.Errorf("cache: truncated salience scores")
	}
	summary.SalienceScores = make([]float64, nSalience)
	for i := uint64(0); i < nSalience; i++ {
		if pos+8 > len(data) {
			return core.Summary{}, fmt.Errorf("cache: truncated salience score %d", i)
		}
		summary.SalienceScores[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[pos : pos+8]))
		pos += 8
	}

	nItemsets, n, err := readUvarint(data, pos)
	if err != nil {
		return core.Summary{}, fmt.Errorf("cache: %w", err)
	}
	pos = n
	if nItemsets > uint64(len(data)-pos)/9 {
		return core.Summary{}, fmt.Errorf("cache: truncated itemsets")
	}
	summary.RelevantItemsets = make([]core.ItemsetResult, nItemsets)
	for i := uint64(0); i < nItemsets; i++ {
		text, next, err := readString(data, pos)
		if err != nil {
			return core.Summary{}, fmt.Errorf("cache: itemset %d text: %w", i, err)
		}
		pos = next
		if pos+8 > len(data) {
			return core.Summary{}, fmt.Errorf("cache: truncated itemset %d score", i)
		}
		score := math.Float64frombits(binary.LittleEndian.Uint64(data[pos : pos+8]))
		pos += 8
		summary.RelevantItemsets[i] = core.ItemsetResult{Text: text, Score: score}
	}

	nKeywords, n, err := readUvarint(data, pos)
	if err != nil {
		return core.Summary{}, fmt.Errorf("cache: %w", err)
	}
	pos = n
	if nKeywords > uint64(len(data)-pos)/9 {
		return core.Summary{}, fmt.Errorf("cache: truncated keywords")
	}
	summary.RelevantKeywords = make([]core.KeywordResult, nKeywords)
	for i := uint64(0); i < nKeywords; i++ {
		keyword, next, err := readString(data, pos)
		if err != nil {
			return core.Summary{}, fmt.Errorf("cache: keyword %d text: %w", i, err)
		}
		pos = next
		if pos+8 > len(data) {
			return core.Summary{}, fmt.Errorf("cache: truncated keyword %d score", i)
		}
		score := math.Float64frombits(binary.LittleEndian.Uint64(data[pos : pos+8]))
		pos += 8
		summary.RelevantKeywords[i] = core.KeywordResult{Keyword: keyword, Score: score}
	}

	return summary, nil
}

func appendUvarint(buf []byte, x uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], x)
	return append(buf, tmp[:n]...)
}

func readUvarint(data []byte, pos int) (uint64, int, error) {
	v, n := binary.Uvarint(data[pos:])
	if n <= 0 {
		return 0, pos, fmt.Errorf("malformed varint at offset %d", pos)
	}
	return v, pos + n, nil
}

func appendString(buf []byte, s string) []byte {
	buf = appendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func readString(data []byte, pos int) (string, int, error) {
	length, next, err := readUvarint(data, pos)
	if err != nil {
		return "", pos, err
	}
	if length > uint64(len(data)-next) {
		return "", pos, fmt.Errorf("truncated string at offset %d", pos)
	}
	return string(data[next : next+int(length)]), next + int(length), nil
}

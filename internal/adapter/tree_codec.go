// Package adapter bridges the pipeline to the filesystem and the serialized
// tree formats.
package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/codeclear/unveil/internal/model"
)

// TreeCodec decodes and encodes serialized program trees. Parsing source text
// is the external parser's job; codecs only move trees it already produced.
type TreeCodec interface {
	Decode(r io.Reader) (*model.Node, error)
	Encode(w io.Writer, root *model.Node) error
}

// CodecFor picks a codec from the file extension: .json for the JSON codec,
// .msgpack or .bin for the binary codec.
func CodecFor(path string) (TreeCodec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return NewJSONCodec(), nil
	case ".msgpack", ".bin":
		return NewMsgpackCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported tree format %q", ext)
	}
}

type jsonCodec struct{}

// NewJSONCodec returns the JSON tree codec.
func NewJSONCodec() TreeCodec {
	return jsonCodec{}
}

func (jsonCodec) Decode(r io.Reader) (*model.Node, error) {
	var root model.Node
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	if err := validateTree(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

func (jsonCodec) Encode(w io.Writer, root *model.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return nil
}

type msgpackCodec struct{}

// NewMsgpackCodec returns the binary tree codec.
func NewMsgpackCodec() TreeCodec {
	return msgpackCodec{}
}

func (msgpackCodec) Decode(r io.Reader) (*model.Node, error) {
	var root model.Node
	if err := msgpack.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	if err := validateTree(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

func (msgpackCodec) Encode(w io.Writer, root *model.Node) error {
	if err := msgpack.NewEncoder(w).Encode(root); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return nil
}

// validateTree checks the decoded tree against the kind vocabulary. Decoding
// yields a fresh tree, so single ownership and acyclicity hold by
// construction; only the vocabulary needs checking.
func validateTree(root *model.Node) error {
	if !root.Kind.Valid() {
		return fmt.Errorf("unknown node kind %q", root.Kind)
	}
	for _, child := range root.Children {
		if child == nil {
			return fmt.Errorf("null child under %q node", root.Kind)
		}
		if err := validateTree(child); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anvilfile/nbtkit/internal/fsio"
	"github.com/anvilfile/nbtkit/nbt"
)

var dumpCompression string

func init() {
	cmd := newDumpCmd()
	cmd.Flags().
		StringVar(&dumpCompression, "format", "auto", "Input compression: auto, raw, gzip, zlib")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode an NBT file and print its tree",
		Long: `The dump command decodes an NBT file and prints one line per node,
showing its kind, key, and value. This is a plain node-by-node listing,
not a stringified-NBT (SNBT) renderer.

Example:
  nbtctl dump level.dat
  nbtctl dump chunk.nbt --format gzip
  nbtctl dump level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]
	printVerbose("Reading %s\n", path)

	data, err := fsio.Load(path)
	if err != nil {
		return err
	}

	opts, err := decodeOptionsForFormat(dumpCompression)
	if err != nil {
		return err
	}

	root, err := nbt.Decode(data, opts)
	if err != nil && root == nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err != nil {
		printVerbose("decoded with warning: %v\n", err)
	}

	if jsonOut {
		return printJSON(nodeToJSON(root))
	}

	printNode(root, 0)
	return nil
}

// forcedFormatCodec decompresses every input as a fixed format, bypassing
// nbt.Decode's own GZIP/ZLIB/raw sniff for callers who already know their
// input's wrapper (e.g. --format on the command line).
type forcedFormatCodec struct{ format nbt.CompressionFormat }

func (c forcedFormatCodec) Decompress(_ nbt.CompressionFormat, data []byte) ([]byte, error) {
	return nbt.DefaultCodec.Decompress(c.format, data)
}

func (c forcedFormatCodec) Compress(format nbt.CompressionFormat, data []byte) ([]byte, error) {
	return nbt.DefaultCodec.Compress(format, data)
}

func decodeOptionsForFormat(format string) (*nbt.DecodeOptions, error) {
	switch format {
	case "", "auto":
		return nil, nil
	case "raw":
		return &nbt.DecodeOptions{Codec: forcedFormatCodec{nbt.Raw}}, nil
	case "gzip":
		return &nbt.DecodeOptions{Codec: forcedFormatCodec{nbt.GZIP}}, nil
	case "zlib":
		return &nbt.DecodeOptions{Codec: forcedFormatCodec{nbt.ZLIB}}, nil
	default:
		return nil, fmt.Errorf("unknown --format %q (want auto, raw, gzip, or zlib)", format)
	}
}

func nodeToJSON(n *nbt.Node) interface{} {
	entry := map[string]interface{}{"kind": n.Kind().String()}
	if key, ok := n.Key(); ok {
		entry["key"] = key
	}
	if v, ok := describeScalar(n); ok {
		entry["value"] = v
	}
	if n.Kind() == nbt.KindList || n.Kind() == nbt.KindCompound {
		children := make([]interface{}, 0, n.ChildCount())
		for _, c := range n.Children() {
			children = append(children, nodeToJSON(c))
		}
		entry["children"] = children
	}
	return entry
}

func describeScalar(n *nbt.Node) (interface{}, bool) {
	switch n.Kind() {
	case nbt.KindByte:
		v, _ := n.AsByte()
		return v, true
	case nbt.KindShort:
		v, _ := n.AsShort()
		return v, true
	case nbt.KindInt:
		v, _ := n.AsInt()
		return v, true
	case nbt.KindLong:
		v, _ := n.AsLong()
		return v, true
	case nbt.KindFloat:
		v, _ := n.AsFloat()
		return v, true
	case nbt.KindDouble:
		v, _ := n.AsDouble()
		return v, true
	case nbt.KindString:
		v, _ := n.AsString()
		return v, true
	case nbt.KindByteArray:
		v, _ := n.AsByteArray()
		return fmt.Sprintf("%d bytes", len(v)), true
	case nbt.KindIntArray:
		v, _ := n.AsIntArray()
		return fmt.Sprintf("%d ints", len(v)), true
	case nbt.KindLongArray:
		v, _ := n.AsLongArray()
		return fmt.Sprintf("%d longs", len(v)), true
	default:
		return nil, false
	}
}

func printNode(n *nbt.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	key, hasKey := n.Key()
	label := n.Kind().String()
	if hasKey {
		label = fmt.Sprintf("%s(%q)", label, key)
	}
	if v, ok := describeScalar(n); ok {
		printInfo("%s%s: %v\n", indent, label, v)
	} else {
		printInfo("%s%s\n", indent, label)
	}
	for _, c := range n.Children() {
		printNode(c, depth+1)
	}
}

package lnk

import (
	"errors"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/source"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Parse decodes a link held in memory. data is not retained.
//
// Example:
//
//	data, _ := os.ReadFile("Notepad.lnk")
//	link, err := lnk.Parse(data, &lnk.Options{Name: "Notepad.lnk"})
func Parse(data []byte, opts *Options) (*ShellLink, error) {
	var name string
	if opts != nil {
		name = opts.Name
	}
	return Decode(source.Bytes(name, data), opts)
}

// Open decodes the link at path, reading it through the file handle on
// demand. The file is closed before Open returns.
func Open(path string, opts *Options) (*ShellLink, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindSource, Msg: "open " + path, Err: err}
	}
	defer src.Close()
	return Decode(src, withDefaultName(opts, path))
}

// OpenMapped decodes the link at path through a read-only memory mapping.
// The mapping is released before OpenMapped returns.
func OpenMapped(path string, opts *Options) (*ShellLink, error) {
	src, err := source.Map(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindSource, Msg: "map " + path, Err: err}
	}
	defer src.Close()
	return Decode(src, withDefaultName(opts, path))
}

func withDefaultName(opts *Options, path string) *Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Name == "" {
		o.Name = path
	}
	return &o
}

// Decode runs the decoder against src. It does not close src. Sections are
// decoded in file order: header, target ID list, LinkInfo, string data.
// Extra data blocks after the strings are not decoded.
func Decode(src source.Source, opts *Options) (*ShellLink, error) {
	s, err := opts.settings()
	if err != nil {
		return nil, fmt.Errorf("lnk: %w", err)
	}
	name := s.name
	if name == "" {
		name = src.Name()
	}
	log := s.log.With("link", name)

	c, err := buf.New(src, src.Size())
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindSource, Msg: "read " + name, Err: err}
	}

	link := &ShellLink{name: name, platform: s.platform, exists: s.exists}

	if link.header, err = format.ParseHeader(c); err != nil {
		return nil, wrapDecodeErr(name, err)
	}
	log.Debug("header decoded", "flags", link.header.Flags.String(), "size", src.Size())

	if link.header.Flags.Has(types.HasLinkTargetIDList) {
		if link.idList, err = format.ParseIDList(c); err != nil {
			return nil, wrapDecodeErr(name, err)
		}
		log.Debug("target id list decoded", "items", len(link.idList.Items), "offset", c.Offset())
	}

	if link.header.Flags.Has(types.HasLinkInfo) {
		if link.linkInfo, err = format.ParseLinkInfo(c, s.platform); err != nil {
			return nil, wrapDecodeErr(name, err)
		}
		log.Debug("link info decoded",
			"flags", link.linkInfo.Header.Flags.String(),
			"volume", link.linkInfo.Volume != nil,
			"network", link.linkInfo.NetworkLink != nil,
			"offset", c.Offset())
	}

	if link.stringData, err = format.ParseStringData(c, link.header.Flags); err != nil {
		return nil, wrapDecodeErr(name, err)
	}
	log.Debug("string data decoded", "offset", c.Offset(), "trailing", c.Remaining())

	return link, nil
}

// wrapDecodeErr classifies a decoder failure. Read failures from the source
// are source errors; everything else is malformed input.
func wrapDecodeErr(name string, err error) error {
	if errors.Is(err, buf.ErrRead) {
		return &types.Error{Kind: types.ErrKindSource, Msg: "read " + name, Err: err}
	}
	msg := "malformed shell link"
	if name != "" {
		msg += " " + name
	}
	return &types.Error{Kind: types.ErrKindMalformed, Msg: msg, Err: err}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/pkg/lnk"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print the fields stored in a shell link",
		Long: `The info command decodes a shell link and prints its description,
paths, arguments, icon, window state, hot key, timestamps, volume and
network share details, and the resolved target.

Example:
  lnkctl info Notepad.lnk
  lnkctl info Notepad.lnk --json
  lnkctl info Notepad.lnk --codepage 932 --resolve=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// linkReport is the printable view of a decoded link.
type linkReport struct {
	File             string   `json:"file" yaml:"file"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	RelativePath     string   `json:"relative_path,omitempty" yaml:"relative_path,omitempty"`
	WorkingDirectory string   `json:"working_directory,omitempty" yaml:"working_directory,omitempty"`
	Arguments        string   `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	ArgumentList     []string `json:"argument_list,omitempty" yaml:"argument_list,omitempty"`
	IconLocation     string   `json:"icon_location,omitempty" yaml:"icon_location,omitempty"`
	IconIndex        int32    `json:"icon_index" yaml:"icon_index"`
	ShowCommand      string   `json:"show_command" yaml:"show_command"`
	HotKey           string   `json:"hot_key,omitempty" yaml:"hot_key,omitempty"`
	Flags            string   `json:"flags" yaml:"flags"`
	FileAttributes   string   `json:"file_attributes" yaml:"file_attributes"`
	FileSize         uint32   `json:"file_size" yaml:"file_size"`
	Created          string   `json:"created,omitempty" yaml:"created,omitempty"`
	Accessed         string   `json:"accessed,omitempty" yaml:"accessed,omitempty"`
	Modified         string   `json:"modified,omitempty" yaml:"modified,omitempty"`
	IDListItems      int      `json:"id_list_items" yaml:"id_list_items"`
	LocalBasePath    string   `json:"local_base_path,omitempty" yaml:"local_base_path,omitempty"`
	CommonPathSuffix string   `json:"common_path_suffix,omitempty" yaml:"common_path_suffix,omitempty"`
	VolumeLabel      string   `json:"volume_label,omitempty" yaml:"volume_label,omitempty"`
	DriveType        string   `json:"drive_type,omitempty" yaml:"drive_type,omitempty"`
	DriveSerial      string   `json:"drive_serial,omitempty" yaml:"drive_serial,omitempty"`
	NetName          string   `json:"net_name,omitempty" yaml:"net_name,omitempty"`
	DeviceName       string   `json:"device_name,omitempty" yaml:"device_name,omitempty"`
	Target           string   `json:"target,omitempty" yaml:"target,omitempty"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func newLinkReport(link *lnk.ShellLink) (linkReport, error) {
	r := linkReport{
		File:             link.FileName(),
		Description:      link.Description(),
		RelativePath:     link.RelativePath(),
		WorkingDirectory: link.WorkingDirectory(),
		Arguments:        link.ArgumentsString(),
		IconLocation:     link.IconLocation(),
		IconIndex:        link.IconIndex(),
		ShowCommand:      link.ShowCommand().String(),
		HotKey:           link.HotKey().String(),
		Flags:            link.Flags().String(),
		FileAttributes:   link.FileAttributes().String(),
		FileSize:         link.FileSize(),
		Created:          formatTime(link.CreationTime()),
		Accessed:         formatTime(link.AccessTime()),
		Modified:         formatTime(link.WriteTime()),
		IDListItems:      len(link.IDList()),
		LocalBasePath:    link.LocalBasePath(),
		CommonPathSuffix: link.CommonPathSuffix(),
		NetName:          link.NetName(),
		DeviceName:       link.DeviceName(),
	}
	args, err := link.Arguments()
	if err != nil {
		return linkReport{}, fmt.Errorf("failed to split arguments: %w", err)
	}
	r.ArgumentList = args
	if li := link.LinkInfo(); li != nil && li.Volume != nil {
		r.VolumeLabel = link.VolumeLabel()
		r.DriveType = link.DriveType().String()
		r.DriveSerial = fmt.Sprintf("%04X-%04X", link.DriveSerialNumber()>>16, link.DriveSerialNumber()&0xFFFF)
	}
	if cfg.Resolve {
		r.Target = link.Resolve()
	}
	return r, nil
}

func runInfo(args []string) error {
	link, err := openLink(args[0])
	if err != nil {
		return err
	}
	r, err := newLinkReport(link)
	if err != nil {
		return err
	}

	if ok, err := printStructured(r); ok {
		return err
	}

	printInfo("\nShell Link Information:\n")
	printInfo("  File: %s\n", r.File)
	field := func(label, value string) {
		if value != "" {
			printInfo("  %s: %s\n", label, value)
		}
	}
	field("Description", r.Description)
	field("Relative path", r.RelativePath)
	field("Working directory", r.WorkingDirectory)
	field("Arguments", r.Arguments)
	if len(r.ArgumentList) > 1 {
		field("Argument list", strings.Join(quoteAll(r.ArgumentList), " "))
	}
	if r.IconLocation != "" {
		printInfo("  Icon: %s,%d\n", r.IconLocation, r.IconIndex)
	}
	printInfo("  Show command: %s\n", r.ShowCommand)
	field("Hot key", r.HotKey)

	printInfo("\nHeader:\n")
	printInfo("  Flags: %s\n", r.Flags)
	printInfo("  Attributes: %s\n", r.FileAttributes)
	printInfo("  Target size: %d bytes\n", r.FileSize)
	field("Created", r.Created)
	field("Accessed", r.Accessed)
	field("Modified", r.Modified)
	printVerbose("  ID list items: %d\n", r.IDListItems)

	if link.LinkInfo() != nil {
		printInfo("\nLocation:\n")
		field("Local base path", r.LocalBasePath)
		field("Common path suffix", r.CommonPathSuffix)
		field("Volume label", r.VolumeLabel)
		field("Drive type", r.DriveType)
		field("Drive serial", r.DriveSerial)
		field("Network share", r.NetName)
		field("Device", r.DeviceName)
	}

	if cfg.Resolve {
		printInfo("\nTarget:\n")
		if r.Target == "" {
			printInfo("  (no existing candidate)\n")
		} else {
			printInfo("  %s\n", r.Target)
		}
	}
	return nil
}

func quoteAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmt.Sprintf("%q", a)
	}
	return out
}

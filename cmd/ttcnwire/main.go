/*
Command ttcnwire converts TTCN-3 module parameters into framed wire
messages and back.

	ttcnwire encode -t bitstring params.toml [name ...]
	ttcnwire decode -t bitstring <hex> [hex ...]
	ttcnwire match  -t octetstring params.toml <name> <literal>

Each frame carries a varint length prefix, the parameter name and the
template in its text encoding.
*/
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	ttcn "github.com/JesseCoretta/go-ttcnplus"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB"))
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type options struct {
	typ     string
	verbose bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "ttcnwire",
		Short:         "Encode and decode TTCN-3 templates as framed wire messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
				plainStyles()
			}
			if opts.verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				ttcn.SetLogger(l)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.typ, "type", "t", "bitstring",
		"template type: bitstring, hexstring, octetstring, boolean or verdict")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.SetOut(out)

	root.AddCommand(
		&cobra.Command{
			Use:   "encode <params.toml> [name ...]",
			Short: "Print one hex frame per module parameter",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return dispatch(opts.typ, encoder{out, args[0], args[1:]})
			},
		},
		&cobra.Command{
			Use:   "decode <hex> [hex ...]",
			Short: "Split a hex byte stream into frames and print their templates",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := hex.DecodeString(strings.Join(args, ""))
				if err != nil {
					return fmt.Errorf("decode: %w", err)
				}
				return dispatch(opts.typ, decoder{out, data})
			},
		},
		&cobra.Command{
			Use:   "match <params.toml> <name> <literal>",
			Short: "Match a value literal against a module parameter template",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return dispatch(opts.typ, matcher{out, args[0], args[1], args[2]})
			},
		},
	)
	return root
}

func plainStyles() {
	nameStyle = lipgloss.NewStyle()
	frameStyle = lipgloss.NewStyle()
	failStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
}

/*
job is implemented by each subcommand once per supported template type.
*/
type job interface {
	bitstring() error
	hexstring() error
	octetstring() error
	boolean() error
	verdict() error
}

func dispatch(typ string, j job) error {
	switch typ {
	case "bitstring":
		return j.bitstring()
	case "hexstring":
		return j.hexstring()
	case "octetstring":
		return j.octetstring()
	case "boolean":
		return j.boolean()
	case "verdict":
		return j.verdict()
	}
	return fmt.Errorf("unknown template type %q", typ)
}

type encoder struct {
	out   io.Writer
	path  string
	names []string
}

func (e encoder) bitstring() error   { return encodeParams[ttcn.Bitstring](e) }
func (e encoder) hexstring() error   { return encodeParams[ttcn.Hexstring](e) }
func (e encoder) octetstring() error { return encodeParams[ttcn.Octetstring](e) }
func (e encoder) boolean() error     { return encodeParams[ttcn.Boolean](e) }
func (e encoder) verdict() error     { return encodeParams[ttcn.Verdict](e) }

func encodeParams[V ttcn.Value[V]](e encoder) (err error) {
	params, err := ttcn.LoadModuleParams(e.path)
	if err != nil {
		return err
	}

	names := e.names
	if len(names) == 0 {
		for name := range params {
			names = append(names, name)
		}
		slices.Sort(names)
	}

	for _, name := range names {
		var t ttcn.Template[V]
		if err = params.Bind(name, &t); err != nil {
			return err
		}

		var frame string
		if err = ttcn.Catch(func() { frame = encodeFrame(name, t) }); err != nil {
			t.Release()
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(e.out, "%s %s\n", nameStyle.Render(name), frameStyle.Render(frame))
		t.Release()
	}
	return nil
}

func encodeFrame[V ttcn.Value[V]](name string, t ttcn.Template[V]) string {
	buf := ttcn.NewTextBuf()
	buf.PushString(name)
	t.EncodeText(buf)
	buf.CalculateLength()
	return hex.EncodeToString(buf.Data())
}

type decoder struct {
	out  io.Writer
	data []byte
}

func (d decoder) bitstring() error   { return decodeFrames[ttcn.Bitstring](d) }
func (d decoder) hexstring() error   { return decodeFrames[ttcn.Hexstring](d) }
func (d decoder) octetstring() error { return decodeFrames[ttcn.Octetstring](d) }
func (d decoder) boolean() error     { return decodeFrames[ttcn.Boolean](d) }
func (d decoder) verdict() error     { return decodeFrames[ttcn.Verdict](d) }

func decodeFrames[V ttcn.Value[V]](d decoder) error {
	buf := ttcn.NewTextBuf(d.data...)
	for {
		ok, err := buf.IsCompleteMessage()
		if err != nil {
			return err
		} else if !ok {
			break
		}

		buf.Rewind()
		if _, err = buf.PullInt(); err != nil {
			return err
		}
		name, err := buf.PullString()
		if err != nil {
			return err
		}
		var t ttcn.Template[V]
		if err = t.DecodeText(buf); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(d.out, "%s := %s\n", nameStyle.Render(name), t.String())
		t.Release()

		if _, err = buf.DiscardMessage(); err != nil {
			return err
		}
	}

	if buf.Len() > 0 {
		fmt.Fprintln(d.out, dimStyle.Render(fmt.Sprintf("%d trailing bytes do not form a complete message", buf.Len())))
	}
	return nil
}

type matcher struct {
	out     io.Writer
	path    string
	name    string
	literal string
}

func (m matcher) bitstring() error   { return matchParam[ttcn.Bitstring](m) }
func (m matcher) hexstring() error   { return matchParam[ttcn.Hexstring](m) }
func (m matcher) octetstring() error { return matchParam[ttcn.Octetstring](m) }
func (m matcher) boolean() error     { return matchParam[ttcn.Boolean](m) }
func (m matcher) verdict() error     { return matchParam[ttcn.Verdict](m) }

func matchParam[V ttcn.Value[V], P interface {
	*V
	SetParam(*ttcn.ParsedParam) error
}](m matcher) error {
	params, err := ttcn.LoadModuleParams(m.path)
	if err != nil {
		return err
	}

	var t ttcn.Template[V]
	if err = params.Bind(m.name, &t); err != nil {
		return err
	}
	defer t.Release()

	p, err := ttcn.ParseParam(m.literal)
	if err != nil {
		return err
	}
	var v V
	if err = P(&v).SetParam(p); err != nil {
		return err
	}

	var matched bool
	if err = ttcn.Catch(func() { matched = t.Match(v) }); err != nil {
		return err
	}

	verdict := failStyle.Render("no match")
	if matched {
		verdict = frameStyle.Render("match")
	}
	fmt.Fprintf(m.out, "%s %s %s\n", v.String(), dimStyle.Render("vs "+t.String()+":"), verdict)
	return nil
}

package byteio

// ControlByte represents a named ASCII control byte.
type ControlByte struct {
	N string
	B byte
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlByte{
	{"<NUL>", 0x00},
	{"<SOH>", 0x01},
	{"<STX>", 0x02},
	{"<ETX>", 0x03},
	{"<EOT>", 0x04},
	{"<ENQ>", 0x05},
	{"<ACK>", 0x06},
	{"<BEL>", 0x07},
	{"<BS>", 0x08},
	{"<HT>", 0x09},
	{"<NL>", 0x0A},
	{"<VT>", 0x0B},
	{"<NP>", 0x0C},
	{"<CR>", 0x0D},
	{"<SO>", 0x0E},
	{"<SI>", 0x0F},
	{"<DLE>", 0x10},
	{"<DC1>", 0x11},
	{"<DC2>", 0x12},
	{"<DC3>", 0x13},
	{"<DC4>", 0x14},
	{"<NAK>", 0x15},
	{"<SYN>", 0x16},
	{"<ETB>", 0x17},
	{"<CAN>", 0x18},
	{"<EM>", 0x19},
	{"<SUB>", 0x1A},
	{"<ESC>", 0x1B},
	{"<FS>", 0x1C},
	{"<GS>", 0x1D},
	{"<RS>", 0x1E},
	{"<US>", 0x1F},
}

// PseudoCtls provides the typical mneumonics for space and delete.
var PseudoCtls = [2]ControlByte{
	{"<SP>", 0x20},
	{"<DEL>", 0x7F},
}

// ControlWords maps control mnemonic strings to bytes.
var ControlWords map[string]byte

var controlNames [256]string

func init() {
	ControlWords = make(map[string]byte, len(C0Ctls)+len(PseudoCtls))
	for _, ctls := range [][]ControlByte{C0Ctls[:], PseudoCtls[:]} {
		for _, ctl := range ctls {
			ControlWords[ctl.N] = ctl.B
			controlNames[ctl.B] = ctl.N
		}
	}
}

// Name returns the control mnemonic for b, or "" if b is not a control byte.
func Name(b byte) string { return controlNames[b] }

// backslash escape letters, as accepted inside a quoted byte literal
var escapes = map[byte]string{
	'0': "<NUL>",
	'a': "<BEL>",
	'b': "<BS>",
	't': "<HT>",
	'n': "<NL>",
	'v': "<VT>",
	'r': "<CR>",
	'f': "<NP>",
	'e': "<ESC>",
}

// Escape returns the byte named by a backslash escape letter like the 'n' in
// `\n`; it returns false for any letter outside of \0 \a \b \t \n \v \r \f \e.
func Escape(c byte) (byte, bool) {
	name, ok := escapes[c]
	if !ok {
		return 0, false
	}
	return ControlWords[name], true
}

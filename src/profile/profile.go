// Package profile reads a cell profile: the hopping and control channel
// parameters of one channel assignment, kept in a YAML file so the command
// line tools don't need a dozen flags every time.
//
//	name: test-cell
//	ma: [17, 29, 41, 53]
//	hsn: 12
//	maio: 1
//	control_channel:
//	  ccch_conf: 1_C
//	  bs_ag_blks_res: 1
//	  bs_pa_mfrms: 2
package profile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	gsm0502 "github.com/doismellburning/gsm0502/src"
)

var (
	ErrEmptyMA     = errors.New("mobile allocation is empty")
	ErrHSNRange    = errors.New("hsn out of range (valid range: 0-63)")
	ErrMAIORange   = errors.New("maio must be less than the number of frequencies")
	ErrBsAgBlksRes = errors.New("bs_ag_blks_res leaves no paging blocks")
	ErrBsPaMfrms   = errors.New("bs_pa_mfrms out of range (valid range: 0-7)")
	ErrCCCHConf    = errors.New("unknown ccch_conf")
	ErrBsCcChans   = errors.New("bs_cc_chans out of range (valid range: 0-4)")
	ErrARFCNRange  = errors.New("arfcn out of range (valid range: 0-1023)")
	ErrDuplicateMA = errors.New("mobile allocation lists a frequency twice")
	errNotAProfile = errors.New("empty profile")
)

const (
	maxARFCN        = 1023
	defaultCCCHConf = "1_NC"
)

// ControlChannel is the YAML form of gsm0502.ControlChannelDescr.
type ControlChannel struct {
	CCCHConf    string `yaml:"ccch_conf"`
	BsAgBlksRes uint8  `yaml:"bs_ag_blks_res"`
	BsPaMfrms   uint8  `yaml:"bs_pa_mfrms"`
}

type Profile struct {
	Name           string         `yaml:"name"`
	MA             []uint16       `yaml:"ma"`
	HSN            uint8          `yaml:"hsn"`
	MAIO           uint8          `yaml:"maio"`
	BsCcChans      int            `yaml:"bs_cc_chans"` // 0 means derive from ccch_conf
	ControlChannel ControlChannel `yaml:"control_channel"`
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	var p, parseErr = Parse(data)
	if parseErr != nil {
		return nil, fmt.Errorf("profile %s: %w", path, parseErr)
	}

	return p, nil
}

// Parse decodes and validates a profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	if p.Name == "" && len(p.MA) == 0 && p.ControlChannel == (ControlChannel{}) { //nolint:exhaustruct
		return nil, errNotAProfile
	}

	p.applyDefaults()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Profile) applyDefaults() {
	if p.ControlChannel.CCCHConf == "" {
		p.ControlChannel.CCCHConf = defaultCCCHConf
	}
}

// Validate checks everything the gsm0502 functions take as a precondition,
// so that a bad file gives an error instead of a trap.
func (p *Profile) Validate() error {
	if len(p.MA) == 0 {
		return ErrEmptyMA
	}

	var seen = make(map[uint16]bool, len(p.MA))
	for _, arfcn := range p.MA {
		if int(arfcn) > maxARFCN {
			return fmt.Errorf("%w: %d", ErrARFCNRange, arfcn)
		}
		if seen[arfcn] {
			return fmt.Errorf("%w: %d", ErrDuplicateMA, arfcn)
		}
		seen[arfcn] = true
	}

	if p.HSN > gsm0502.MaxHSN {
		return fmt.Errorf("%w: %d", ErrHSNRange, p.HSN)
	}

	if int(p.MAIO) >= len(p.MA) {
		return fmt.Errorf("%w: maio %d, %d frequencies", ErrMAIORange, p.MAIO, len(p.MA))
	}

	var descr, err = p.Descr()
	if err != nil {
		return err
	}

	if gsm0502.NPagBlocks(descr) < 1 {
		return fmt.Errorf("%w: %d reserved with ccch_conf %s", ErrBsAgBlksRes, descr.BsAgBlksRes, descr.CCCHConf)
	}

	if descr.BsPaMfrms > 7 {
		return fmt.Errorf("%w: %d", ErrBsPaMfrms, descr.BsPaMfrms)
	}

	if p.BsCcChans < 0 || p.BsCcChans > 4 {
		return fmt.Errorf("%w: %d", ErrBsCcChans, p.BsCcChans)
	}

	return nil
}

// Descr converts the control channel section.
func (p *Profile) Descr() (gsm0502.ControlChannelDescr, error) {
	var conf, err = ParseCCCHConf(p.ControlChannel.CCCHConf)
	if err != nil {
		return gsm0502.ControlChannelDescr{}, err //nolint:exhaustruct
	}

	return gsm0502.ControlChannelDescr{
		CCCHConf:    conf,
		BsAgBlksRes: p.ControlChannel.BsAgBlksRes,
		BsPaMfrms:   p.ControlChannel.BsPaMfrms,
	}, nil
}

// CCCHChans is the configured bs_cc_chans, or the one implied by ccch_conf.
func (p *Profile) CCCHChans() int {
	if p.BsCcChans > 0 {
		return p.BsCcChans
	}

	var descr, err = p.Descr()
	if err != nil {
		return 0
	}

	return gsm0502.BsCcChans(descr.CCCHConf)
}

var ccchConfNames = map[string]gsm0502.CCCHConf{
	"1_NC": gsm0502.CCCHConf1NC,
	"1_C":  gsm0502.CCCHConf1C,
	"2_NC": gsm0502.CCCHConf2NC,
	"3_NC": gsm0502.CCCHConf3NC,
	"4_NC": gsm0502.CCCHConf4NC,
}

// ParseCCCHConf accepts the names printed by gsm0502.CCCHConf.String, case
// insensitive, or the numeric coding.
func ParseCCCHConf(s string) (gsm0502.CCCHConf, error) {
	if conf, ok := ccchConfNames[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return conf, nil
	}

	var n, err = strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err == nil && gsm0502.BsCcChans(gsm0502.CCCHConf(n)) > 0 {
		return gsm0502.CCCHConf(n), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrCCCHConf, s)
}

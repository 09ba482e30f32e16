//go:build windows

package counters

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modpdh      = windows.NewLazySystemDLL("pdh.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGlobalMemoryStatusEx = modkernel32.NewProc("GlobalMemoryStatusEx")

	procPdhOpenQueryW               = modpdh.NewProc("PdhOpenQueryW")
	procPdhAddEnglishCounterW       = modpdh.NewProc("PdhAddEnglishCounterW")
	procPdhCollectQueryData         = modpdh.NewProc("PdhCollectQueryData")
	procPdhGetFormattedCounterValue = modpdh.NewProc("PdhGetFormattedCounterValue")
	procPdhEnumObjectItemsW         = modpdh.NewProc("PdhEnumObjectItemsW")
	procPdhCloseQuery               = modpdh.NewProc("PdhCloseQuery")
)

const (
	pdhFmtDouble     = 0x00000200
	pdhFmtNoCap100   = 0x00008000
	perfDetailWizard = 400

	pdhCstatusValidData   = 0x00000000
	pdhCstatusNewData     = 0x00000001
	pdhMoreData           = 0x800007D2
	pdhCstatusInvalidData = 0xC0000BBA
	pdhInvalidData        = 0xC0000BC6
	pdhNoData             = 0x800007D5
)

// pdhFmtCounterValueDouble mirrors PDH_FMT_COUNTERVALUE with a double payload.
type pdhFmtCounterValueDouble struct {
	CStatus     uint32
	_           uint32
	DoubleValue float64
}

// pdhStatus is a PDH_STATUS failure code.
type pdhStatus uint32

func (s pdhStatus) Error() string {
	return fmt.Sprintf("pdh status 0x%08X", uint32(s))
}

type pdhCounter struct {
	query   uintptr
	counter uintptr
}

// pdhSource opens one PDH query per counter so each handle collects on its
// own schedule and keeps independent next-value state.
type pdhSource struct {
	counters map[Handle]pdhCounter
	next     Handle
}

// NewSource returns the PDH-backed counter source.
func NewSource() (Source, error) {
	if err := modpdh.Load(); err != nil {
		return nil, fmt.Errorf("load pdh.dll: %w", err)
	}
	return &pdhSource{counters: make(map[Handle]pdhCounter)}, nil
}

func (s *pdhSource) Open(path string) (Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	var c pdhCounter
	if r, _, _ := procPdhOpenQueryW.Call(0, 0, uintptr(unsafe.Pointer(&c.query))); r != 0 {
		return 0, pdhStatus(r)
	}
	r, _, _ := procPdhAddEnglishCounterW.Call(c.query, uintptr(unsafe.Pointer(p)), 0, uintptr(unsafe.Pointer(&c.counter)))
	if r != 0 {
		procPdhCloseQuery.Call(c.query)
		return 0, pdhStatus(r)
	}
	s.next++
	s.counters[s.next] = c
	return s.next, nil
}

// Next collects the counter's query and formats the value. A rate counter
// with only one raw sample reports invalid data, which reads as 0.
func (s *pdhSource) Next(h Handle) (float64, error) {
	c, ok := s.counters[h]
	if !ok {
		return 0, fmt.Errorf("invalid counter handle %d", h)
	}
	if r, _, _ := procPdhCollectQueryData.Call(c.query); r != 0 && r != pdhNoData {
		return 0, pdhStatus(r)
	}
	var v pdhFmtCounterValueDouble
	r, _, _ := procPdhGetFormattedCounterValue.Call(c.counter, pdhFmtDouble|pdhFmtNoCap100, 0, uintptr(unsafe.Pointer(&v)))
	switch uint32(r) {
	case 0:
	case pdhInvalidData, pdhCstatusInvalidData:
		return 0, nil
	default:
		return 0, pdhStatus(r)
	}
	switch v.CStatus {
	case pdhCstatusValidData, pdhCstatusNewData:
		return v.DoubleValue, nil
	case pdhCstatusInvalidData:
		return 0, nil
	}
	return 0, pdhStatus(v.CStatus)
}

func (s *pdhSource) Release(h Handle) error {
	c, ok := s.counters[h]
	if !ok {
		return fmt.Errorf("invalid counter handle %d", h)
	}
	delete(s.counters, h)
	if r, _, _ := procPdhCloseQuery.Call(c.query); r != 0 {
		return pdhStatus(r)
	}
	return nil
}

func (s *pdhSource) Instances(object string) ([]string, error) {
	obj, err := windows.UTF16PtrFromString(object)
	if err != nil {
		return nil, err
	}
	var counterLen, instanceLen uint32
	r, _, _ := procPdhEnumObjectItemsW.Call(0, 0, uintptr(unsafe.Pointer(obj)),
		0, uintptr(unsafe.Pointer(&counterLen)),
		0, uintptr(unsafe.Pointer(&instanceLen)),
		perfDetailWizard, 0)
	if r != 0 && uint32(r) != pdhMoreData {
		return nil, pdhStatus(r)
	}
	if instanceLen == 0 {
		return nil, nil
	}

	counterBuf := make([]uint16, max(counterLen, 1))
	instanceBuf := make([]uint16, instanceLen)
	r, _, _ = procPdhEnumObjectItemsW.Call(0, 0, uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(&counterBuf[0])), uintptr(unsafe.Pointer(&counterLen)),
		uintptr(unsafe.Pointer(&instanceBuf[0])), uintptr(unsafe.Pointer(&instanceLen)),
		perfDetailWizard, 0)
	if r != 0 {
		return nil, pdhStatus(r)
	}
	return splitMultiSZ(instanceBuf[:instanceLen]), nil
}

// splitMultiSZ splits a double-NUL terminated UTF-16 string list.
func splitMultiSZ(buf []uint16) []string {
	var out []string
	start := 0
	for i, c := range buf {
		if c != 0 {
			continue
		}
		if i == start {
			break
		}
		out = append(out, windows.UTF16ToString(buf[start:i]))
		start = i + 1
	}
	return out
}

// memoryStatusEx mirrors MEMORYSTATUSEX.
type memoryStatusEx struct {
	Length               uint32
	MemoryLoad           uint32
	TotalPhys            uint64
	AvailPhys            uint64
	TotalPageFile        uint64
	AvailPageFile        uint64
	TotalVirtual         uint64
	AvailVirtual         uint64
	AvailExtendedVirtual uint64
}

func (s *pdhSource) TotalMemoryMB() (int64, error) {
	return totalMemoryMB()
}

func totalMemoryMB() (int64, error) {
	var ms memoryStatusEx
	ms.Length = uint32(unsafe.Sizeof(ms))
	if r, _, err := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&ms))); r == 0 {
		return 0, fmt.Errorf("GlobalMemoryStatusEx: %w", err)
	}
	return int64(ms.TotalPhys / (1024 * 1024)), nil
}

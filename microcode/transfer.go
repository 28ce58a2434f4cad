package microcode

import (
	"iter"
)

// Transfer is a bus transfer code of the control word.
type Transfer uint8

const (
	TRANSFER_BITS  = 4
	TRANSFER_COUNT = 1 << TRANSFER_BITS
)

// Transfer codes. The low byte half of the decoder sits above PC_L, the high
// half above the RAM muxing.
const (
	XFER_INC_PC           = Transfer(0)  // INC_PC
	XFER_W_TO_OUTB        = Transfer(1)  // W->OUT_B
	XFER_IN_TO_W          = Transfer(2)  // IN->W
	XFER_W_TO_OUTA        = Transfer(3)  // W->OUT_A
	XFER_PCL_TO_W         = Transfer(4)  // PC_L->W
	XFER_W_TO_PCL         = Transfer(5)  // W->PC_L
	XFER_PCH_TO_W         = Transfer(6)  // PC_H->W
	XFER_W_TO_PCH         = Transfer(7)  // W->PC_H
	XFER_SP_TO_W          = Transfer(8)  // SP->W
	XFER_W_TO_SP          = Transfer(9)  // W->SP
	XFER_REGS_OF_SP_TO_W  = Transfer(10) // REGS[SP]->W
	XFER_W_TO_REGS_OF_SP  = Transfer(11) // W->REGS[SP]
	XFER_IMM_TO_W         = Transfer(12) // IMM->W
	XFER_LD_IMM           = Transfer(13) // LD_IMM
	XFER_REGS_OF_IMM_TO_W = Transfer(14) // REGS[IMM]->W
	XFER_W_TO_REGS_OF_IMM = Transfer(15) // W->REGS[IMM]
)

type transferInfo struct {
	Transfer Transfer
	Name     string
	Src      Reg
	Dst      Reg
	Pseudo   bool // No data moves between named registers.
}

var transferTable = []transferInfo{
	{XFER_INC_PC, "INC_PC", 0, 0, true},
	{XFER_W_TO_OUTB, "", REG_W, REG_OUT_B, false},
	{XFER_IN_TO_W, "", REG_IN, REG_W, false},
	{XFER_W_TO_OUTA, "", REG_W, REG_OUT_A, false},
	{XFER_PCL_TO_W, "", REG_PC_L, REG_W, false},
	{XFER_W_TO_PCL, "", REG_W, REG_PC_L, false},
	{XFER_PCH_TO_W, "", REG_PC_H, REG_W, false},
	{XFER_W_TO_PCH, "", REG_W, REG_PC_H, false},
	{XFER_SP_TO_W, "", REG_SP, REG_W, false},
	{XFER_W_TO_SP, "", REG_W, REG_SP, false},
	{XFER_REGS_OF_SP_TO_W, "", REG_REGS_OF_SP, REG_W, false},
	{XFER_W_TO_REGS_OF_SP, "", REG_W, REG_REGS_OF_SP, false},
	{XFER_IMM_TO_W, "", REG_IMM, REG_W, false},
	{XFER_LD_IMM, "LD_IMM", 0, 0, true},
	{XFER_REGS_OF_IMM_TO_W, "", REG_REGS_OF_IMM, REG_W, false},
	{XFER_W_TO_REGS_OF_IMM, "", REG_W, REG_REGS_OF_IMM, false},
}

// Transfers iterates the transfer catalog in code order.
func Transfers() iter.Seq[Transfer] {
	return func(yield func(Transfer) bool) {
		for _, info := range transferTable {
			if !yield(info.Transfer) {
				return
			}
		}
	}
}

func (xfer Transfer) info() (info transferInfo, ok bool) {
	for _, info = range transferTable {
		if info.Transfer == xfer {
			ok = true
			return
		}
	}
	info = transferInfo{}
	return
}

// Valid returns true if the code is part of the transfer catalog.
func (xfer Transfer) Valid() bool {
	_, ok := xfer.info()
	return ok
}

// Pseudo returns true if the transfer moves no data between registers.
func (xfer Transfer) Pseudo() bool {
	info, _ := xfer.info()
	return info.Pseudo
}

// Regs returns the source and destination of a register transfer.
func (xfer Transfer) Regs() (src, dst Reg, ok bool) {
	info, ok := xfer.info()
	if !ok || info.Pseudo {
		ok = false
		return
	}
	src, dst = info.Src, info.Dst
	return
}

// WritesW returns true if the transfer latches the accumulator.
func (xfer Transfer) WritesW() bool {
	_, dst, ok := xfer.Regs()
	return ok && dst == REG_W
}

// Code returns the transfer field value.
func (xfer Transfer) Code() uint8 {
	return uint8(xfer)
}

func (xfer Transfer) String() string {
	info, ok := xfer.info()
	switch {
	case !ok:
		return f("Transfer(%d)", int(xfer))
	case info.Pseudo:
		return info.Name
	default:
		return info.Src.String() + "->" + info.Dst.String()
	}
}

// TransferOf returns the unique transfer moving src to dst.
func TransferOf(src, dst Reg) (xfer Transfer, err error) {
	if !src.CanSrc() || !dst.CanDst() {
		err = &ErrRegisterCapability{Src: src, Dst: dst}
		return
	}

	for _, info := range transferTable {
		if !info.Pseudo && info.Src == src && info.Dst == dst {
			xfer = info.Transfer
			return
		}
	}

	err = &ErrRegisterCapability{Src: src, Dst: dst}
	return
}

// CheckTransfers verifies the transfer catalog against the decode width.
func CheckTransfers() error {
	return checkTransfers(transferTable)
}

func checkTransfers(table []transferInfo) (err error) {
	seen := make(map[Transfer]bool, len(table))
	type pair struct{ src, dst Reg }
	pairs := make(map[pair]bool, len(table))

	for _, info := range table {
		if int(info.Transfer) >= TRANSFER_COUNT {
			err = ErrTransferCode
			return
		}
		if seen[info.Transfer] {
			err = ErrTransferCollide
			return
		}
		seen[info.Transfer] = true

		if info.Pseudo {
			continue
		}
		if !info.Src.CanSrc() || !info.Dst.CanDst() {
			err = &ErrRegisterCapability{Src: info.Src, Dst: info.Dst}
			return
		}
		key := pair{info.Src, info.Dst}
		if pairs[key] {
			err = ErrTransferCollide
			return
		}
		pairs[key] = true
	}

	return
}

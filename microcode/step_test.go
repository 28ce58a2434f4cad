package microcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepLayout(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0), STEP_RESET_MASK&STEP_ALU_MASK)
	assert.Equal(uint8(0), STEP_RESET_MASK&STEP_XFER_MASK)
	assert.Equal(uint8(0), STEP_ALU_MASK&STEP_XFER_MASK)
	assert.Equal(uint8(0xff), STEP_RESET_MASK|STEP_ALU_MASK|STEP_XFER_MASK)
}

func TestStepEncode(t *testing.T) {
	assert := assert.New(t)

	wload, err := Compute(REG_IMM, ALU_WLOAD)
	assert.NoError(err)
	outa, err := Move(REG_W, REG_OUT_A)
	assert.NoError(err)

	table := []struct {
		name string
		step Step
		code uint8
		text string
	}{
		{"nop", NopStep(), 0xb4, "NOP"},
		{"reset", ResetStep(), 0x34, "RESET"},
		{"inc_pc", IncPcStep(), 0xb0, "INC_PC"},
		{"ld_imm", LoadImmStep(), 0xbd, "LD_IMM"},
		{"wload", wload, 0xfc, "WLOAD    IMM->W"},
		{"outa", outa, 0xb3, "NOP      W->OUT_A"},
	}

	for _, entry := range table {
		assert.NoError(entry.step.Validate(), entry.name)
		assert.Equal(entry.code, entry.step.Encode(), entry.name)
		assert.Equal(entry.text, entry.step.String(), entry.name)
	}
}

func TestStepValidate(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name string
		step Step
		ok   bool
	}{
		{"compute", Step{Transfer: XFER_SP_TO_W, Alu: ALU_WADD}, true},
		{"idle", Step{Transfer: XFER_PCL_TO_W, Alu: ALU_NOP}, true},
		{"w_nop", Step{Transfer: XFER_SP_TO_W, Alu: ALU_NOP}, false},
		{"move", Step{Transfer: XFER_W_TO_SP, Alu: ALU_NOP}, true},
		{"move_alu", Step{Transfer: XFER_W_TO_SP, Alu: ALU_WXOR}, false},
		{"pseudo_alu", Step{Transfer: XFER_INC_PC, Alu: ALU_WADD}, false},
		{"ld_imm_alu", Step{Transfer: XFER_LD_IMM, Alu: ALU_WLOAD}, false},
		{"reset", Step{Transfer: XFER_PCL_TO_W, Alu: ALU_NOP, Reset: true}, true},
		{"reset_xfer", Step{Transfer: XFER_W_TO_SP, Alu: ALU_NOP, Reset: true}, false},
		{"reset_alu", Step{Transfer: XFER_PCL_TO_W, Alu: ALU_WADD, Reset: true}, false},
		{"bad_alu", Step{Transfer: XFER_PCL_TO_W, Alu: AluOp(9)}, false},
		{"bad_xfer", Step{Transfer: Transfer(31), Alu: ALU_NOP}, false},
	}

	for _, entry := range table {
		err := entry.step.Validate()
		if entry.ok {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, ErrStep, entry.name)
		}
	}

	_, err := NewStep(XFER_W_TO_PCH, ALU_WADD)
	assert.ErrorIs(err, ErrStep)
	var illegal *ErrIllegalStep
	assert.ErrorAs(err, &illegal)
	assert.Equal(XFER_W_TO_PCH, illegal.Transfer)

	_, err = Compute(REG_OUT_B, ALU_WADD)
	assert.ErrorIs(err, ErrCapability)

	_, err = Move(REG_W, REG_IMM)
	assert.ErrorIs(err, ErrCapability)
}

func TestStepEncodeInjective(t *testing.T) {
	assert := assert.New(t)

	codes := map[uint8]Step{}
	count := 0
	for step := range LegalSteps() {
		count++
		code := step.Encode()
		other, dup := codes[code]
		assert.False(dup, "%v and %v both encode 0x%02x", step, other, code)
		codes[code] = step

		back, err := DecodeStep(code)
		assert.NoError(err)
		assert.Equal(step, back)
	}

	// 7 W transfers x 7 operations, the idle step, 9 moves and the reset.
	assert.Equal(60, count)
	assert.Len(codes, count)
}

func TestDecodeStepIllegal(t *testing.T) {
	assert := assert.New(t)

	// Reset with a payload
	_, err := DecodeStep(0x00)
	assert.ErrorIs(err, ErrStepDecode)
	assert.ErrorIs(err, ErrStep)

	// W->SP with an ALU operation
	_, err = DecodeStep(0x80 | (uint8(ALU_WADD) << STEP_ALU_SHIFT) | uint8(XFER_W_TO_SP))
	assert.ErrorIs(err, ErrStep)
}

func FuzzDecodeStep(f *testing.F) {
	for _, code := range []uint8{0x00, 0x34, 0xb4, 0xfc, 0xff} {
		f.Add(code)
	}

	f.Fuzz(func(t *testing.T, code uint8) {
		step, err := DecodeStep(code)
		if err != nil {
			return
		}
		if step.Encode() != code {
			t.Fatalf("0x%02x decodes to %v which encodes to 0x%02x", code, step, step.Encode())
		}
	})
}

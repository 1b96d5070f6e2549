// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package cpubus

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored
// - used by C64.Reset() and the disassembly package.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. The BRK
// instruction shares the vector with the IRQ line.
const IRQ = uint16(0xfffe)

// The KERNAL redirects the hardware vectors through RAM so that user
// programs can install their own handlers.
const (
	CINV  = uint16(0x0314)
	CBINV = uint16(0x0316)
	NMINV = uint16(0x0318)
)

// Register represents a named address in the C64 memory map.
type Register string

// List of valid Register values. Names are as they appear in the Commodore
// 64 Programmer's Reference Guide.
const (
	// 6510 on-chip IO port
	D6510 Register = "D6510"
	R6510 Register = "R6510"

	// VIC
	SP0X   Register = "SP0X"
	SP0Y   Register = "SP0Y"
	SP1X   Register = "SP1X"
	SP1Y   Register = "SP1Y"
	SP2X   Register = "SP2X"
	SP2Y   Register = "SP2Y"
	SP3X   Register = "SP3X"
	SP3Y   Register = "SP3Y"
	SP4X   Register = "SP4X"
	SP4Y   Register = "SP4Y"
	SP5X   Register = "SP5X"
	SP5Y   Register = "SP5Y"
	SP6X   Register = "SP6X"
	SP6Y   Register = "SP6Y"
	SP7X   Register = "SP7X"
	SP7Y   Register = "SP7Y"
	MSIGX  Register = "MSIGX"
	SCROLY Register = "SCROLY"
	RASTER Register = "RASTER"
	LPENX  Register = "LPENX"
	LPENY  Register = "LPENY"
	SPENA  Register = "SPENA"
	SCROLX Register = "SCROLX"
	YXPAND Register = "YXPAND"
	VMCSB  Register = "VMCSB"
	VICIRQ Register = "VICIRQ"
	IRQMSK Register = "IRQMSK"
	SPBGPR Register = "SPBGPR"
	SPMC   Register = "SPMC"
	XXPAND Register = "XXPAND"
	SPSPCL Register = "SPSPCL"
	SPBGCL Register = "SPBGCL"
	EXTCOL Register = "EXTCOL"
	BGCOL0 Register = "BGCOL0"
	BGCOL1 Register = "BGCOL1"
	BGCOL2 Register = "BGCOL2"
	BGCOL3 Register = "BGCOL3"
	SPMC0  Register = "SPMC0"
	SPMC1  Register = "SPMC1"
	SP0COL Register = "SP0COL"
	SP1COL Register = "SP1COL"
	SP2COL Register = "SP2COL"
	SP3COL Register = "SP3COL"
	SP4COL Register = "SP4COL"
	SP5COL Register = "SP5COL"
	SP6COL Register = "SP6COL"
	SP7COL Register = "SP7COL"

	// SID
	FRELO1 Register = "FRELO1"
	FREHI1 Register = "FREHI1"
	PWLO1  Register = "PWLO1"
	PWHI1  Register = "PWHI1"
	VCREG1 Register = "VCREG1"
	ATDCY1 Register = "ATDCY1"
	SUREL1 Register = "SUREL1"
	FRELO2 Register = "FRELO2"
	FREHI2 Register = "FREHI2"
	PWLO2  Register = "PWLO2"
	PWHI2  Register = "PWHI2"
	VCREG2 Register = "VCREG2"
	ATDCY2 Register = "ATDCY2"
	SUREL2 Register = "SUREL2"
	FRELO3 Register = "FRELO3"
	FREHI3 Register = "FREHI3"
	PWLO3  Register = "PWLO3"
	PWHI3  Register = "PWHI3"
	VCREG3 Register = "VCREG3"
	ATDCY3 Register = "ATDCY3"
	SUREL3 Register = "SUREL3"
	CUTLO  Register = "CUTLO"
	CUTHI  Register = "CUTHI"
	RESON  Register = "RESON"
	SIGVOL Register = "SIGVOL"
	POTX   Register = "POTX"
	POTY   Register = "POTY"
	RANDOM Register = "RANDOM"
	ENV3   Register = "ENV3"

	// CIA 1
	CIAPRA Register = "CIAPRA"
	CIAPRB Register = "CIAPRB"
	CIDDRA Register = "CIDDRA"
	CIDDRB Register = "CIDDRB"
	TIMALO Register = "TIMALO"
	TIMAHI Register = "TIMAHI"
	TIMBLO Register = "TIMBLO"
	TIMBHI Register = "TIMBHI"
	TODTEN Register = "TODTEN"
	TODSEC Register = "TODSEC"
	TODMIN Register = "TODMIN"
	TODHRS Register = "TODHRS"
	CIASDR Register = "CIASDR"
	CIAICR Register = "CIAICR"
	CIACRA Register = "CIACRA"
	CIACRB Register = "CIACRB"

	// CIA 2
	CI2PRA Register = "CI2PRA"
	CI2PRB Register = "CI2PRB"
	C2DDRA Register = "C2DDRA"
	C2DDRB Register = "C2DDRB"
	TI2ALO Register = "TI2ALO"
	TI2AHI Register = "TI2AHI"
	TI2BLO Register = "TI2BLO"
	TI2BHI Register = "TI2BHI"
	TO2TEN Register = "TO2TEN"
	TO2SEC Register = "TO2SEC"
	TO2MIN Register = "TO2MIN"
	TO2HRS Register = "TO2HRS"
	CI2SDR Register = "CI2SDR"
	CI2ICR Register = "CI2ICR"
	CI2CRA Register = "CI2CRA"
	CI2CRB Register = "CI2CRB"

	// KERNAL and BASIC workspace
	STATUS Register = "STATUS"
	MSGFLG Register = "MSGFLG"
	NDX    Register = "NDX"
	SFDX   Register = "SFDX"
	KEYD   Register = "KEYD"
	COLOR  Register = "COLOR"
	HIBASE Register = "HIBASE"
	XMAX   Register = "XMAX"
	RPTFLG Register = "RPTFLG"
)

// ProcessorPortSymbols indexes the 6510 on-chip IO port by address.
var ProcessorPortSymbols = map[uint16]Register{
	0x0000: D6510,
	0x0001: R6510,
}

// VICSymbols indexes all VIC registers by canonical address. The register
// block is mirrored throughout the $D000 to $D3FF area; only the canonical
// address appears here.
var VICSymbols = map[uint16]Register{
	0xd000: SP0X,
	0xd001: SP0Y,
	0xd002: SP1X,
	0xd003: SP1Y,
	0xd004: SP2X,
	0xd005: SP2Y,
	0xd006: SP3X,
	0xd007: SP3Y,
	0xd008: SP4X,
	0xd009: SP4Y,
	0xd00a: SP5X,
	0xd00b: SP5Y,
	0xd00c: SP6X,
	0xd00d: SP6Y,
	0xd00e: SP7X,
	0xd00f: SP7Y,
	0xd010: MSIGX,
	0xd011: SCROLY,
	0xd012: RASTER,
	0xd013: LPENX,
	0xd014: LPENY,
	0xd015: SPENA,
	0xd016: SCROLX,
	0xd017: YXPAND,
	0xd018: VMCSB,
	0xd019: VICIRQ,
	0xd01a: IRQMSK,
	0xd01b: SPBGPR,
	0xd01c: SPMC,
	0xd01d: XXPAND,
	0xd01e: SPSPCL,
	0xd01f: SPBGCL,
	0xd020: EXTCOL,
	0xd021: BGCOL0,
	0xd022: BGCOL1,
	0xd023: BGCOL2,
	0xd024: BGCOL3,
	0xd025: SPMC0,
	0xd026: SPMC1,
	0xd027: SP0COL,
	0xd028: SP1COL,
	0xd029: SP2COL,
	0xd02a: SP3COL,
	0xd02b: SP4COL,
	0xd02c: SP5COL,
	0xd02d: SP6COL,
	0xd02e: SP7COL,
}

// SIDSymbols indexes all SID registers by canonical address.
var SIDSymbols = map[uint16]Register{
	0xd400: FRELO1,
	0xd401: FREHI1,
	0xd402: PWLO1,
	0xd403: PWHI1,
	0xd404: VCREG1,
	0xd405: ATDCY1,
	0xd406: SUREL1,
	0xd407: FRELO2,
	0xd408: FREHI2,
	0xd409: PWLO2,
	0xd40a: PWHI2,
	0xd40b: VCREG2,
	0xd40c: ATDCY2,
	0xd40d: SUREL2,
	0xd40e: FRELO3,
	0xd40f: FREHI3,
	0xd410: PWLO3,
	0xd411: PWHI3,
	0xd412: VCREG3,
	0xd413: ATDCY3,
	0xd414: SUREL3,
	0xd415: CUTLO,
	0xd416: CUTHI,
	0xd417: RESON,
	0xd418: SIGVOL,
	0xd419: POTX,
	0xd41a: POTY,
	0xd41b: RANDOM,
	0xd41c: ENV3,
}

// CIA1Symbols indexes all CIA 1 registers by canonical address.
var CIA1Symbols = map[uint16]Register{
	0xdc00: CIAPRA,
	0xdc01: CIAPRB,
	0xdc02: CIDDRA,
	0xdc03: CIDDRB,
	0xdc04: TIMALO,
	0xdc05: TIMAHI,
	0xdc06: TIMBLO,
	0xdc07: TIMBHI,
	0xdc08: TODTEN,
	0xdc09: TODSEC,
	0xdc0a: TODMIN,
	0xdc0b: TODHRS,
	0xdc0c: CIASDR,
	0xdc0d: CIAICR,
	0xdc0e: CIACRA,
	0xdc0f: CIACRB,
}

// CIA2Symbols indexes all CIA 2 registers by canonical address.
var CIA2Symbols = map[uint16]Register{
	0xdd00: CI2PRA,
	0xdd01: CI2PRB,
	0xdd02: C2DDRA,
	0xdd03: C2DDRB,
	0xdd04: TI2ALO,
	0xdd05: TI2AHI,
	0xdd06: TI2BLO,
	0xdd07: TI2BHI,
	0xdd08: TO2TEN,
	0xdd09: TO2SEC,
	0xdd0a: TO2MIN,
	0xdd0b: TO2HRS,
	0xdd0c: CI2SDR,
	0xdd0d: CI2ICR,
	0xdd0e: CI2CRA,
	0xdd0f: CI2CRB,
}

// KernalSymbols indexes the KERNAL and BASIC workspace addresses that the
// emulation itself takes an interest in.
var KernalSymbols = map[uint16]Register{
	0x0090: STATUS,
	0x009d: MSGFLG,
	0x00c6: NDX,
	0x00cb: SFDX,
	0x0277: KEYD,
	0x0286: COLOR,
	0x0288: HIBASE,
	0x0289: XMAX,
	0x028a: RPTFLG,
}

// Symbols indexes every named address in the memory map. Unlike the chips in
// some other machines of the era, C64 registers have the same name whether
// they are being read or written, so a single table serves both directions.
var Symbols = map[uint16]Register{}

// Address is the reverse of Symbols, indexing canonical addresses by
// register name.
var Address = map[Register]uint16{}

// Address does not correspond with any known symbol.
const NotACPUBusRegister Register = ""

func init() {
	for _, m := range []map[uint16]Register{
		ProcessorPortSymbols,
		VICSymbols,
		SIDSymbols,
		CIA1Symbols,
		CIA2Symbols,
		KernalSymbols,
	} {
		for k, v := range m {
			Symbols[k] = v
			Address[v] = k
		}
	}
}

// Sentinal error returned by memory package functions. Note that the error
// expects a numberic address, which will be formatted as four digit hex.
const (
	AddressError = "inaccessible address (%#04x)"
)

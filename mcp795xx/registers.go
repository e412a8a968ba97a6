package mcp795xx

// Instruction is an op-code sent as the first byte of every frame.
type Instruction uint8

const (
	EERead  Instruction = 0b0000_0011 // Read data from EEPROM array beginning at selected address
	EEWrite Instruction = 0b0000_0010 // Write data to EEPROM array beginning at selected address
	EEWrdi  Instruction = 0b0000_0100 // Reset the write enable latch
	EEWren  Instruction = 0b0000_0110 // Set the write enable latch
	SRRead  Instruction = 0b0000_0101 // Read STATUS register
	SRWrite Instruction = 0b0000_0001 // Write STATUS register
	Read    Instruction = 0b0001_0011 // Read data from RTCC/SRAM array beginning at selected address
	Write   Instruction = 0b0001_0010 // Write data to RTCC/SRAM array beginning at selected address
	Unlock  Instruction = 0b0001_0100 // Unlock the protected EEPROM block for a write operation
	IDWrite Instruction = 0b0011_0010 // Write data to the protected EEPROM block
	IDRead  Instruction = 0b0011_0011 // Read data from the protected EEPROM block
	ClrRAM  Instruction = 0b0101_0100 // Clear all SRAM data to 0
)

// Register is an address in the RTCC register map.
type Register uint8

const (
	RegHundredths Register = 0x00 // Hundredths of seconds
	RegSeconds    Register = 0x01 // Seconds, oscillator start bit
	RegMinutes    Register = 0x02 // Minutes
	RegHours      Register = 0x03 // Hours, 12/24 format, trim sign
	RegWeekday    Register = 0x04 // Weekday, oscillator/power-fail/battery flags
	RegDate       Register = 0x05 // Day of month
	RegMonth      Register = 0x06 // Month, leap year flag
	RegYear       Register = 0x07 // Two-digit year
	RegControl    Register = 0x08 // Control register
	RegTrim       Register = 0x09 // Oscillator digital trim

	RegAlarm0Seconds Register = 0x0C
	RegAlarm0Minutes Register = 0x0D
	RegAlarm0Hours   Register = 0x0E
	RegAlarm0Weekday Register = 0x0F
	RegAlarm0Date    Register = 0x10
	RegAlarm0Month   Register = 0x11

	RegAlarm1Hundredths Register = 0x12
	RegAlarm1Seconds    Register = 0x13
	RegAlarm1Minutes    Register = 0x14
	RegAlarm1Hours      Register = 0x15
	RegAlarm1Weekday    Register = 0x16
	RegAlarm1Date       Register = 0x17

	RegPowerDownMinutes Register = 0x18
	RegPowerDownHours   Register = 0x19
	RegPowerDownDate    Register = 0x1A
	RegPowerDownMonth   Register = 0x1B
	RegPowerUpMinutes   Register = 0x1C
	RegPowerUpHours     Register = 0x1D
	RegPowerUpDate      Register = 0x1E
	RegPowerUpMonth     Register = 0x1F
)

// BaseYear is the year the two-digit year register counts from.
const BaseYear = 2000

// field extracts bits hi..lo of b.
func field(b uint8, hi, lo uint) uint8 {
	return (b >> lo) & (1<<(hi-lo+1) - 1)
}

// withField replaces bits hi..lo of b with v. Bits of v that do not fit are dropped.
func withField(b uint8, hi, lo uint, v uint8) uint8 {
	mask := uint8(1<<(hi-lo+1)-1) << lo
	return b&^mask | (v<<lo)&mask
}

func bit(b uint8, n uint) bool {
	return b&(1<<n) != 0
}

func withBit(b uint8, n uint, on bool) uint8 {
	if on {
		return b | 1<<n
	}
	return b &^ (1 << n)
}

// bcd reads a BCD value whose tens digit is in bits tensHi..4 and ones digit in bits 3..0.
func bcd(b uint8, tensHi uint) uint8 {
	return field(b, tensHi, 4)*10 + field(b, 3, 0)
}

// withBCD packs v into a tens digit at bits tensHi..4 and a ones digit at bits 3..0.
func withBCD(b uint8, tensHi uint, v uint8) uint8 {
	b = withField(b, tensHi, 4, v/10)
	return withField(b, 3, 0, v%10)
}

// Hundredths is the RTCHSEC register.
type Hundredths uint8

// EncodeHundredths packs hundredths of a second (0-99).
func EncodeHundredths(v uint8) (Hundredths, error) {
	var r Hundredths
	if err := r.SetHundredths(v); err != nil {
		return 0, err
	}
	return r, nil
}

func (r *Hundredths) SetHundredths(v uint8) error {
	if err := checkRange("hundredths", int(v), 0, 99); err != nil {
		return err
	}
	*r = Hundredths(withBCD(uint8(*r), 7, v))
	return nil
}

func (r Hundredths) Hundredths() uint8 {
	return bcd(uint8(r), 7)
}

// Seconds is the RTCSEC register. Bit 7 (ST) starts the oscillator.
type Seconds uint8

const secondsST = 7

// EncodeSeconds packs v (0-59) and sets the oscillator start bit: writing the
// seconds register is where the oscillator gets (re)enabled.
func EncodeSeconds(v uint8) (Seconds, error) {
	var r Seconds
	if err := r.SetSeconds(v); err != nil {
		return 0, err
	}
	r.SetStart(true)
	return r, nil
}

func (r *Seconds) SetSeconds(v uint8) error {
	if err := checkRange("seconds", int(v), 0, 59); err != nil {
		return err
	}
	*r = Seconds(withBCD(uint8(*r), 6, v))
	return nil
}

// Seconds returns the BCD seconds value, ignoring the start bit.
func (r Seconds) Seconds() uint8 {
	return bcd(uint8(r), 6)
}

// Start reports whether the oscillator start bit is set.
func (r Seconds) Start() bool {
	return bit(uint8(r), secondsST)
}

func (r *Seconds) SetStart(on bool) {
	*r = Seconds(withBit(uint8(*r), secondsST, on))
}

// Minutes is the RTCMIN register.
type Minutes uint8

// EncodeMinutes packs v (0-59).
func EncodeMinutes(v uint8) (Minutes, error) {
	var r Minutes
	if err := r.SetMinutes(v); err != nil {
		return 0, err
	}
	return r, nil
}

func (r *Minutes) SetMinutes(v uint8) error {
	if err := checkRange("minutes", int(v), 0, 59); err != nil {
		return err
	}
	*r = Minutes(withBCD(uint8(*r), 6, v))
	return nil
}

func (r Minutes) Minutes() uint8 {
	return bcd(uint8(r), 6)
}

// Hours is the RTCHOUR register.
//
// The tens digit window depends on bit 6: in 24-hour format it spans bits 5-4
// (digit 0-2), in 12-hour format it is bit 4 alone (digit 0-1) and bit 5 holds
// the PM flag instead.
type Hours uint8

const (
	hoursTrimSign = 7
	hoursFormat   = 6 // 1 = 12-hour
	hoursPM       = 5
)

// EncodeHours24 packs v (0-23) in 24-hour format.
func EncodeHours24(v uint8) (Hours, error) {
	var r Hours
	if err := r.SetHours24(v); err != nil {
		return 0, err
	}
	return r, nil
}

// EncodeHours12 packs v (0-12) in 12-hour format with the given AM/PM flag.
func EncodeHours12(v uint8, pm bool) (Hours, error) {
	var r Hours
	if err := r.SetHours12(v, pm); err != nil {
		return 0, err
	}
	return r, nil
}

func (r *Hours) SetHours24(v uint8) error {
	if err := checkRange("hours", int(v), 0, 23); err != nil {
		return err
	}
	b := withBCD(uint8(*r), 5, v)
	*r = Hours(withBit(b, hoursFormat, false))
	return nil
}

func (r *Hours) SetHours12(v uint8, pm bool) error {
	if err := checkRange("hours", int(v), 0, 12); err != nil {
		return err
	}
	b := withBCD(uint8(*r), 4, v)
	b = withBit(b, hoursPM, pm)
	*r = Hours(withBit(b, hoursFormat, true))
	return nil
}

// Hours returns the hour as stored: 0-23 in 24-hour format, 0-12 in 12-hour
// format (see PM).
func (r Hours) Hours() uint8 {
	if r.Is12Hour() {
		return bcd(uint8(r), 4)
	}
	return bcd(uint8(r), 5)
}

// Hours24 returns the hour on the 0-23 scale regardless of format.
func (r Hours) Hours24() uint8 {
	h := r.Hours()
	if !r.Is12Hour() {
		return h
	}
	if h == 12 {
		h = 0
	}
	if r.PM() {
		h += 12
	}
	return h
}

func (r Hours) Is12Hour() bool {
	return bit(uint8(r), hoursFormat)
}

// PM reports the PM flag. Only meaningful in 12-hour format.
func (r Hours) PM() bool {
	return r.Is12Hour() && bit(uint8(r), hoursPM)
}

// TrimSign reports whether digital trim adds clocks (true) or subtracts them.
func (r Hours) TrimSign() bool {
	return bit(uint8(r), hoursTrimSign)
}

// Weekday is the RTCWKDAY register.
type Weekday uint8

const (
	weekdayOscRun  = 5
	weekdayPwrFail = 4
	weekdayVBatEn  = 3
)

// EncodeWeekday packs v (1-7), clears the power-fail flag and enables battery
// backup, since a write establishes a known time.
func EncodeWeekday(v uint8) (Weekday, error) {
	var r Weekday
	if err := r.SetWeekday(v); err != nil {
		return 0, err
	}
	r.SetPowerFail(false)
	r.SetBatteryEnabled(true)
	return r, nil
}

func (r *Weekday) SetWeekday(v uint8) error {
	if err := checkRange("weekday", int(v), 1, 7); err != nil {
		return err
	}
	*r = Weekday(withField(uint8(*r), 2, 0, v))
	return nil
}

// Weekday returns the 3-bit day field as stored, without validation.
func (r Weekday) Weekday() uint8 {
	return field(uint8(r), 2, 0)
}

// OscillatorRunning reports the OSCRUN flag. Read-only on the chip.
func (r Weekday) OscillatorRunning() bool {
	return bit(uint8(r), weekdayOscRun)
}

func (r Weekday) PowerFail() bool {
	return bit(uint8(r), weekdayPwrFail)
}

func (r *Weekday) SetPowerFail(on bool) {
	*r = Weekday(withBit(uint8(*r), weekdayPwrFail, on))
}

func (r Weekday) BatteryEnabled() bool {
	return bit(uint8(r), weekdayVBatEn)
}

func (r *Weekday) SetBatteryEnabled(on bool) {
	*r = Weekday(withBit(uint8(*r), weekdayVBatEn, on))
}

// Date is the RTCDATE register.
type Date uint8

// EncodeDate packs a day of month (1-31). Month length is not checked.
func EncodeDate(v uint8) (Date, error) {
	var r Date
	if err := r.SetDate(v); err != nil {
		return 0, err
	}
	return r, nil
}

func (r *Date) SetDate(v uint8) error {
	if err := checkRange("date", int(v), 1, 31); err != nil {
		return err
	}
	*r = Date(withBCD(uint8(*r), 5, v))
	return nil
}

func (r Date) Date() uint8 {
	return bcd(uint8(r), 5)
}

// Month is the RTCMTH register.
type Month uint8

const monthLeapYear = 5

// EncodeMonth packs v (1-12). The leap year bit is maintained by the chip.
func EncodeMonth(v uint8) (Month, error) {
	var r Month
	if err := r.SetMonth(v); err != nil {
		return 0, err
	}
	return r, nil
}

func (r *Month) SetMonth(v uint8) error {
	if err := checkRange("month", int(v), 1, 12); err != nil {
		return err
	}
	*r = Month(withBCD(uint8(*r), 4, v))
	return nil
}

func (r Month) Month() uint8 {
	return bcd(uint8(r), 4)
}

// LeapYear reports the LPYR flag set by the chip.
func (r Month) LeapYear() bool {
	return bit(uint8(r), monthLeapYear)
}

// Year is the RTCYEAR register, two BCD digits counted from BaseYear.
type Year uint8

// EncodeYear packs an absolute year in BaseYear..BaseYear+99.
func EncodeYear(v uint16) (Year, error) {
	var r Year
	if err := r.SetYear(v); err != nil {
		return 0, err
	}
	return r, nil
}

func (r *Year) SetYear(v uint16) error {
	if err := checkRange("year", int(v), BaseYear, BaseYear+99); err != nil {
		return err
	}
	*r = Year(withBCD(uint8(*r), 7, uint8(v-BaseYear)))
	return nil
}

func (r Year) Year() uint16 {
	return BaseYear + uint16(bcd(uint8(r), 7))
}

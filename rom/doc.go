// Package rom writes generated ROM contents in the formats consumed by the
// EEPROM programmer firmware.
package rom

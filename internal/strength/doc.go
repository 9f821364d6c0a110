// Package strength holds the password strength vocabulary shared by the
// scoring client, the controller and the terminal UI: the ordered Label
// enumeration, its fixed color table and the Assessment value type.
package strength

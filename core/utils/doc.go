// Package utils provides loose type conversion for feed fields.
// Furnidata carries classnames and descriptions as strings or JSON numbers
// depending on the hotel; ToString normalises them.
package utils

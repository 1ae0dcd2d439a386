package output

// Package output renders the coordinate log as the JSON document printed on
// shutdown and parses it back.

// Package stats computes the descriptive statistics the analysis pipeline
// stores alongside each persistence diagram: count, mean, standard
// deviation, min, quartiles and max of a raw trace or of each coordinate
// of an embedded point cloud.
//
// Quantiles use linear interpolation on the sorted sample, so the numbers
// line up with the spreadsheet-style summaries the experimentalists
// already keep. Backed by gonum/stat.
package stats

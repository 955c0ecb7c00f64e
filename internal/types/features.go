package types

import "strings"

// FeatureSet is a bitmask of interface capabilities gathered from the peers.
type FeatureSet uint64

const (
	FeatureInfraSTA FeatureSet = 1 << iota
	FeatureSoftAP
	FeatureP2P
	FeatureNAN
	FeatureWPA3SAE
	FeatureWPA3SuiteB
	FeatureOWE
	FeatureDPP
	FeatureFILS
	FeatureMBO
	FeatureOCE
	Feature11AX
	Feature11BE
	FeatureTDLS
	FeatureLinkLayerStats
	FeatureMACRandomization
)

var featureNames = []struct {
	f    FeatureSet
	name string
}{
	{FeatureInfraSTA, "infra_sta"},
	{FeatureSoftAP, "soft_ap"},
	{FeatureP2P, "p2p"},
	{FeatureNAN, "nan"},
	{FeatureWPA3SAE, "wpa3_sae"},
	{FeatureWPA3SuiteB, "wpa3_suite_b"},
	{FeatureOWE, "owe"},
	{FeatureDPP, "dpp"},
	{FeatureFILS, "fils"},
	{FeatureMBO, "mbo"},
	{FeatureOCE, "oce"},
	{Feature11AX, "11ax"},
	{Feature11BE, "11be"},
	{FeatureTDLS, "tdls"},
	{FeatureLinkLayerStats, "link_layer_stats"},
	{FeatureMACRandomization, "mac_randomization"},
}

// Has reports whether every feature in f is present.
func (s FeatureSet) Has(f FeatureSet) bool {
	return s&f == f
}

// Union returns the features present in either set.
func (s FeatureSet) Union(o FeatureSet) FeatureSet {
	return s | o
}

func (s FeatureSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, fn := range featureNames {
		if s&fn.f != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}

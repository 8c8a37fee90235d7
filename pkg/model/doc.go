// Package model describes the inputs of versionchanger.
//
// The object model is composed of:
//
//  Version:
//    A version string made of 3 dot-separated integers: major.minor.patch.
//    It is written as CFBundleShortVersionString.
//
//  Build number:
//    An integer, written as CFBundleVersion.
//
//  Params:
//    The validated pair of a version and a build number, as given on the command line.
package model

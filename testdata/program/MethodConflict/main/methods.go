package main

func (t Test) String() string { return "custom" }

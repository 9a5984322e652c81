package board

// periodicTable lists every element in atomic-number order.
var periodicTable = []Element{
	{Number: 1, Symbol: "H", Name: "Hydrogen", Category: CategoryReactiveNonmetal, Position: Position{Row: 1, Col: 1}},
	{Number: 2, Symbol: "He", Name: "Helium", Category: CategoryNobleGas, Position: Position{Row: 1, Col: 18}},
	{Number: 3, Symbol: "Li", Name: "Lithium", Category: CategoryAlkaliMetal, Position: Position{Row: 2, Col: 1}},
	{Number: 4, Symbol: "Be", Name: "Beryllium", Category: CategoryAlkalineEarthMetal, Position: Position{Row: 2, Col: 2}},
	{Number: 5, Symbol: "B", Name: "Boron", Category: CategoryMetalloid, Position: Position{Row: 2, Col: 13}},
	{Number: 6, Symbol: "C", Name: "Carbon", Category: CategoryReactiveNonmetal, Position: Position{Row: 2, Col: 14}},
	{Number: 7, Symbol: "N", Name: "Nitrogen", Category: CategoryReactiveNonmetal, Position: Position{Row: 2, Col: 15}},
	{Number: 8, Symbol: "O", Name: "Oxygen", Category: CategoryReactiveNonmetal, Position: Position{Row: 2, Col: 16}},
	{Number: 9, Symbol: "F", Name: "Fluorine", Category: CategoryHalogen, Position: Position{Row: 2, Col: 17}},
	{Number: 10, Symbol: "Ne", Name: "Neon", Category: CategoryNobleGas, Position: Position{Row: 2, Col: 18}},
	{Number: 11, Symbol: "Na", Name: "Sodium", Category: CategoryAlkaliMetal, Position: Position{Row: 3, Col: 1}},
	{Number: 12, Symbol: "Mg", Name: "Magnesium", Category: CategoryAlkalineEarthMetal, Position: Position{Row: 3, Col: 2}},
	{Number: 13, Symbol: "Al", Name: "Aluminium", Category: CategoryPostTransitionMetal, Position: Position{Row: 3, Col: 13}},
	{Number: 14, Symbol: "Si", Name: "Silicon", Category: CategoryMetalloid, Position: Position{Row: 3, Col: 14}},
	{Number: 15, Symbol: "P", Name: "Phosphorus", Category: CategoryReactiveNonmetal, Position: Position{Row: 3, Col: 15}},
	{Number: 16, Symbol: "S", Name: "Sulfur", Category: CategoryReactiveNonmetal, Position: Position{Row: 3, Col: 16}},
	{Number: 17, Symbol: "Cl", Name: "Chlorine", Category: CategoryHalogen, Position: Position{Row: 3, Col: 17}},
	{Number: 18, Symbol: "Ar", Name: "Argon", Category: CategoryNobleGas, Position: Position{Row: 3, Col: 18}},
	{Number: 19, Symbol: "K", Name: "Potassium", Category: CategoryAlkaliMetal, Position: Position{Row: 4, Col: 1}},
	{Number: 20, Symbol: "Ca", Name: "Calcium", Category: CategoryAlkalineEarthMetal, Position: Position{Row: 4, Col: 2}},
	{Number: 21, Symbol: "Sc", Name: "Scandium", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 3}},
	{Number: 22, Symbol: "Ti", Name: "Titanium", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 4}},
	{Number: 23, Symbol: "V", Name: "Vanadium", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 5}},
	{Number: 24, Symbol: "Cr", Name: "Chromium", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 6}},
	{Number: 25, Symbol: "Mn", Name: "Manganese", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 7}},
	{Number: 26, Symbol: "Fe", Name: "Iron", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 8}},
	{Number: 27, Symbol: "Co", Name: "Cobalt", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 9}},
	{Number: 28, Symbol: "Ni", Name: "Nickel", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 10}},
	{Number: 29, Symbol: "Cu", Name: "Copper", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 11}},
	{Number: 30, Symbol: "Zn", Name: "Zinc", Category: CategoryTransitionMetal, Position: Position{Row: 4, Col: 12}},
	{Number: 31, Symbol: "Ga", Name: "Gallium", Category: CategoryPostTransitionMetal, Position: Position{Row: 4, Col: 13}},
	{Number: 32, Symbol: "Ge", Name: "Germanium", Category: CategoryMetalloid, Position: Position{Row: 4, Col: 14}},
	{Number: 33, Symbol: "As", Name: "Arsenic", Category: CategoryMetalloid, Position: Position{Row: 4, Col: 15}},
	{Number: 34, Symbol: "Se", Name: "Selenium", Category: CategoryReactiveNonmetal, Position: Position{Row: 4, Col: 16}},
	{Number: 35, Symbol: "Br", Name: "Bromine", Category: CategoryHalogen, Position: Position{Row: 4, Col: 17}},
	{Number: 36, Symbol: "Kr", Name: "Krypton", Category: CategoryNobleGas, Position: Position{Row: 4, Col: 18}},
	{Number: 37, Symbol: "Rb", Name: "Rubidium", Category: CategoryAlkaliMetal, Position: Position{Row: 5, Col: 1}},
	{Number: 38, Symbol: "Sr", Name: "Strontium", Category: CategoryAlkalineEarthMetal, Position: Position{Row: 5, Col: 2}},
	{Number: 39, Symbol: "Y", Name: "Yttrium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 3}},
	{Number: 40, Symbol: "Zr", Name: "Zirconium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 4}},
	{Number: 41, Symbol: "Nb", Name: "Niobium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 5}},
	{Number: 42, Symbol: "Mo", Name: "Molybdenum", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 6}},
	{Number: 43, Symbol: "Tc", Name: "Technetium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 7}},
	{Number: 44, Symbol: "Ru", Name: "Ruthenium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 8}},
	{Number: 45, Symbol: "Rh", Name: "Rhodium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 9}},
	{Number: 46, Symbol: "Pd", Name: "Palladium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 10}},
	{Number: 47, Symbol: "Ag", Name: "Silver", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 11}},
	{Number: 48, Symbol: "Cd", Name: "Cadmium", Category: CategoryTransitionMetal, Position: Position{Row: 5, Col: 12}},
	{Number: 49, Symbol: "In", Name: "Indium", Category: CategoryPostTransitionMetal, Position: Position{Row: 5, Col: 13}},
	{Number: 50, Symbol: "Sn", Name: "Tin", Category: CategoryPostTransitionMetal, Position: Position{Row: 5, Col: 14}},
	{Number: 51, Symbol: "Sb", Name: "Antimony", Category: CategoryMetalloid, Position: Position{Row: 5, Col: 15}},
	{Number: 52, Symbol: "Te", Name: "Tellurium", Category: CategoryMetalloid, Position: Position{Row: 5, Col: 16}},
	{Number: 53, Symbol: "I", Name: "Iodine", Category: CategoryHalogen, Position: Position{Row: 5, Col: 17}},
	{Number: 54, Symbol: "Xe", Name: "Xenon", Category: CategoryNobleGas, Position: Position{Row: 5, Col: 18}},
	{Number: 55, Symbol: "Cs", Name: "Caesium", Category: CategoryAlkaliMetal, Position: Position{Row: 6, Col: 1}},
	{Number: 56, Symbol: "Ba", Name: "Barium", Category: CategoryAlkalineEarthMetal, Position: Position{Row: 6, Col: 2}},
	{Number: 57, Symbol: "La", Name: "Lanthanum", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 3}},
	{Number: 58, Symbol: "Ce", Name: "Cerium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 4}},
	{Number: 59, Symbol: "Pr", Name: "Praseodymium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 5}},
	{Number: 60, Symbol: "Nd", Name: "Neodymium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 6}},
	{Number: 61, Symbol: "Pm", Name: "Promethium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 7}},
	{Number: 62, Symbol: "Sm", Name: "Samarium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 8}},
	{Number: 63, Symbol: "Eu", Name: "Europium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 9}},
	{Number: 64, Symbol: "Gd", Name: "Gadolinium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 10}},
	{Number: 65, Symbol: "Tb", Name: "Terbium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 11}},
	{Number: 66, Symbol: "Dy", Name: "Dysprosium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 12}},
	{Number: 67, Symbol: "Ho", Name: "Holmium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 13}},
	{Number: 68, Symbol: "Er", Name: "Erbium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 14}},
	{Number: 69, Symbol: "Tm", Name: "Thulium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 15}},
	{Number: 70, Symbol: "Yb", Name: "Ytterbium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 16}},
	{Number: 71, Symbol: "Lu", Name: "Lutetium", Category: CategoryLanthanide, Position: Position{Row: 9, Col: 17}},
	{Number: 72, Symbol: "Hf", Name: "Hafnium", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 4}},
	{Number: 73, Symbol: "Ta", Name: "Tantalum", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 5}},
	{Number: 74, Symbol: "W", Name: "Tungsten", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 6}},
	{Number: 75, Symbol: "Re", Name: "Rhenium", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 7}},
	{Number: 76, Symbol: "Os", Name: "Osmium", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 8}},
	{Number: 77, Symbol: "Ir", Name: "Iridium", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 9}},
	{Number: 78, Symbol: "Pt", Name: "Platinum", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 10}},
	{Number: 79, Symbol: "Au", Name: "Gold", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 11}},
	{Number: 80, Symbol: "Hg", Name: "Mercury", Category: CategoryTransitionMetal, Position: Position{Row: 6, Col: 12}},
	{Number: 81, Symbol: "Tl", Name: "Thallium", Category: CategoryPostTransitionMetal, Position: Position{Row: 6, Col: 13}},
	{Number: 82, Symbol: "Pb", Name: "Lead", Category: CategoryPostTransitionMetal, Position: Position{Row: 6, Col: 14}},
	{Number: 83, Symbol: "Bi", Name: "Bismuth", Category: CategoryPostTransitionMetal, Position: Position{Row: 6, Col: 15}},
	{Number: 84, Symbol: "Po", Name: "Polonium", Category: CategoryPostTransitionMetal, Position: Position{Row: 6, Col: 16}},
	{Number: 85, Symbol: "At", Name: "Astatine", Category: CategoryHalogen, Position: Position{Row: 6, Col: 17}},
	{Number: 86, Symbol: "Rn", Name: "Radon", Category: CategoryNobleGas, Position: Position{Row: 6, Col: 18}},
	{Number: 87, Symbol: "Fr", Name: "Francium", Category: CategoryAlkaliMetal, Position: Position{Row: 7, Col: 1}},
	{Number: 88, Symbol: "Ra", Name: "Radium", Category: CategoryAlkalineEarthMetal, Position: Position{Row: 7, Col: 2}},
	{Number: 89, Symbol: "Ac", Name: "Actinium", Category: CategoryActinide, Position: Position{Row: 10, Col: 3}},
	{Number: 90, Symbol: "Th", Name: "Thorium", Category: CategoryActinide, Position: Position{Row: 10, Col: 4}},
	{Number: 91, Symbol: "Pa", Name: "Protactinium", Category: CategoryActinide, Position: Position{Row: 10, Col: 5}},
	{Number: 92, Symbol: "U", Name: "Uranium", Category: CategoryActinide, Position: Position{Row: 10, Col: 6}},
	{Number: 93, Symbol: "Np", Name: "Neptunium", Category: CategoryActinide, Position: Position{Row: 10, Col: 7}},
	{Number: 94, Symbol: "Pu", Name: "Plutonium", Category: CategoryActinide, Position: Position{Row: 10, Col: 8}},
	{Number: 95, Symbol: "Am", Name: "Americium", Category: CategoryActinide, Position: Position{Row: 10, Col: 9}},
	{Number: 96, Symbol: "Cm", Name: "Curium", Category: CategoryActinide, Position: Position{Row: 10, Col: 10}},
	{Number: 97, Symbol: "Bk", Name: "Berkelium", Category: CategoryActinide, Position: Position{Row: 10, Col: 11}},
	{Number: 98, Symbol: "Cf", Name: "Californium", Category: CategoryActinide, Position: Position{Row: 10, Col: 12}},
	{Number: 99, Symbol: "Es", Name: "Einsteinium", Category: CategoryActinide, Position: Position{Row: 10, Col: 13}},
	{Number: 100, Symbol: "Fm", Name: "Fermium", Category: CategoryActinide, Position: Position{Row: 10, Col: 14}},
	{Number: 101, Symbol: "Md", Name: "Mendelevium", Category: CategoryActinide, Position: Position{Row: 10, Col: 15}},
	{Number: 102, Symbol: "No", Name: "Nobelium", Category: CategoryActinide, Position: Position{Row: 10, Col: 16}},
	{Number: 103, Symbol: "Lr", Name: "Lawrencium", Category: CategoryActinide, Position: Position{Row: 10, Col: 17}},
	{Number: 104, Symbol: "Rf", Name: "Rutherfordium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 4}},
	{Number: 105, Symbol: "Db", Name: "Dubnium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 5}},
	{Number: 106, Symbol: "Sg", Name: "Seaborgium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 6}},
	{Number: 107, Symbol: "Bh", Name: "Bohrium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 7}},
	{Number: 108, Symbol: "Hs", Name: "Hassium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 8}},
	{Number: 109, Symbol: "Mt", Name: "Meitnerium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 9}},
	{Number: 110, Symbol: "Ds", Name: "Darmstadtium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 10}},
	{Number: 111, Symbol: "Rg", Name: "Roentgenium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 11}},
	{Number: 112, Symbol: "Cn", Name: "Copernicium", Category: CategoryTransitionMetal, Position: Position{Row: 7, Col: 12}},
	{Number: 113, Symbol: "Nh", Name: "Nihonium", Category: CategoryPostTransitionMetal, Position: Position{Row: 7, Col: 13}},
	{Number: 114, Symbol: "Fl", Name: "Flerovium", Category: CategoryPostTransitionMetal, Position: Position{Row: 7, Col: 14}},
	{Number: 115, Symbol: "Mc", Name: "Moscovium", Category: CategoryPostTransitionMetal, Position: Position{Row: 7, Col: 15}},
	{Number: 116, Symbol: "Lv", Name: "Livermorium", Category: CategoryPostTransitionMetal, Position: Position{Row: 7, Col: 16}},
	{Number: 117, Symbol: "Ts", Name: "Tennessine", Category: CategoryHalogen, Position: Position{Row: 7, Col: 17}},
	{Number: 118, Symbol: "Og", Name: "Oganesson", Category: CategoryNobleGas, Position: Position{Row: 7, Col: 18}},
}
